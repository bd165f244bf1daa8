package pathfind_test

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/mallnav/builder"
	"github.com/katalvlaran/mallnav/pathfind"
	"github.com/katalvlaran/mallnav/venue"
)

// ExampleFindPath routes between two floors through an elevator.
func ExampleFindPath() {
	v := venue.New()
	_, _ = v.AddFloor(0)
	_, _ = v.AddFloor(1)
	_, _ = v.AddConnector(venue.ConnectorSpec{Name: "E1", Kind: venue.Elevator, Accessible: true, Pos: r2.Vec{X: 10}})
	_ = v.PlaceConnector("E1", 0)
	_ = v.PlaceConnector("E1", 1)
	_, _ = v.AddShop(0, "Bakery", r2.Vec{})
	_, _ = v.AddShop(1, "Cinema", r2.Vec{})
	_ = v.Connect(0, "Bakery", "E1")
	_ = v.Connect(1, "E1", "Cinema")
	if _, err := builder.Build(v); err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := pathfind.FindPath(v, "bakery", "Cinema", pathfind.WithAccessible(true))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, id := range res.Path {
		fmt.Println(id)
	}
	fmt.Printf("cost=%.0f\n", res.Cost)
	// Output:
	// Bakery @ Level 0
	// Connector:E1 @ Level 0
	// Connector:E1 @ Level 1
	// Cinema @ Level 1
	// cost=25
}

// ExampleSuggest lists close matches for a misspelt shop name.
func ExampleSuggest() {
	v := venue.New()
	_, _ = v.AddFloor(0)
	_, _ = v.AddShop(0, "Bakery", r2.Vec{})
	_, _ = v.AddShop(0, "Bookshop", r2.Vec{X: 5})

	fmt.Println(pathfind.Suggest(v, "Bakeryy"))
	// Output: [Bakery]
}
