// SPDX-License-Identifier: MIT

// Package logging provides the structured logger shared by the mallnav
// command and handed to library packages through their WithLogger options.
//
// Every record carries service=mallnav and the build version. Library
// packages add their own component attribute.
package logging
