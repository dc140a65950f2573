package export_test

import (
	"fmt"

	"github.com/katalvlaran/rgex/export"
	"github.com/katalvlaran/rgex/model"
	"github.com/katalvlaran/rgex/symbolic"
)

// ExampleExporter_Run exports the one-loop running of a single gauge coupling.
func ExampleExporter_Run() {
	m := model.New("QCD")
	_ = m.AddCoupling("g")
	beta, _ := symbolic.Parse("-7*pow(g, 3)", m.IsMatrix)
	_ = m.AddRGE(model.GaugeCouplings, 0, "g", beta)

	e, err := export.New(m)
	if err != nil {
		fmt.Println(err)
		return
	}
	out, err := e.Run()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(string(out))

	// Output:
	// ### UFO 'running.py' automatically generated by rgex ###
	//
	// import cmath
	// import parameters as P
	// from object_library import all_running_elements, Running
	// from function_library import complexconjugate as cc
	//
	//
	// ###################
	// # Gauge Couplings #
	// ###################
	//
	// Rgauge1 = Running(name        = 'Rgauge1',
	//                   run_objects = [
	//                                   [P.g, P.g, P.g]
	//                                 ],
	//                   value = -7./(16*cmath.pi**2))
}
