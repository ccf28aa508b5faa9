package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/jarias/webtools/internal/service"
)

// run keeps main testable. The tools do all the work; this layer only picks
// one and prints its text block.
func run(args []string, out io.Writer) int {
	fs := flag.NewFlagSet("webtools", flag.ContinueOnError)
	fs.SetOutput(out)
	buscar := fs.String("buscar", "", "busca en la web y muestra los primeros resultados")
	clima := fs.String("clima", "", "muestra el clima actual de una ubicación")
	coordenadas := fs.String("coordenadas", "", "muestra las coordenadas de una ubicación")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	ctx := context.Background()
	switch {
	case *buscar != "":
		fmt.Fprintln(out, service.NewSearchService(nil, nil).Search(ctx, *buscar))
	case *clima != "":
		fmt.Fprintln(out, service.NewWeatherService(nil, nil).LookupByName(ctx, *clima))
	case *coordenadas != "":
		fmt.Fprintln(out, service.NewWeatherService(nil, nil).ResolveCoordinates(ctx, *coordenadas))
	default:
		fs.Usage()
		return 2
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}
