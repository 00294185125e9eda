package walls_test

import (
	"fmt"

	"github.com/katalvlaran/mirrorpath/geom"
	"github.com/katalvlaran/mirrorpath/walls"
)

// ExampleNear keeps only the walls closer than 50 to the direct path.
func ExampleNear() {
	all := walls.Slice{
		walls.NewWall(geom.Pt(500, 500), geom.Pt(510, 500), 7),
		walls.NewWall(geom.Pt(0, -5), geom.Pt(20, -5), 8),
		walls.NewWall(geom.Pt(20, 60), geom.Pt(0, 60), 9),
	}
	index, err := walls.IndexCatalogue(all)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	near, ids, _ := walls.Near(all, index, geom.Seg(0, 0, 20, 0), 50)
	fmt.Println(ids, len(near), near[0].BuildingID)

	// Output:
	// [1] 1 8
}
