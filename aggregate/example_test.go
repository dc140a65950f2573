package aggregate_test

import (
	"fmt"

	"github.com/katalvlaran/rgex/aggregate"
	"github.com/katalvlaran/rgex/model"
)

// ExampleGroups shows first-seen ordering of coefficient keys.
func ExampleGroups() {
	g := aggregate.New()
	g.Add(model.GaugeCouplings, "2.", aggregate.Entry{Coupling: "g1"})
	g.Add(model.GaugeCouplings, "1.", aggregate.Entry{Coupling: "g2"})
	g.Add(model.GaugeCouplings, "2.", aggregate.Entry{Coupling: "g3"})

	for _, grp := range g.Groups(model.GaugeCouplings) {
		fmt.Println(grp.Key, len(grp.Entries))
	}

	// Output:
	// 2. 2
	// 1. 1
}
