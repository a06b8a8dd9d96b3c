package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ghodss/yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/klog"

	"github.com/tuneinsight/polyquad/quadrature"
	"github.com/tuneinsight/polyquad/utils/sampling"
)

// Options holds the command line configuration. Flags that are set override
// the values read from the configuration file, which override the defaults.
type Options struct {
	Config       string
	Coefficients []float64
	XMin         float64
	XMax         float64
	Intervals    int
	Precision    string
	Seed         string
	RandomDegree int
	Order        bool
	DumpGrid     string
	Output       string

	flags *pflag.FlagSet
	out   io.Writer
}

// output is the document printed with --output json|yaml.
type output struct {
	*quadrature.Report
	Order *quadrature.Order `json:"order,omitempty"`
}

// NewCommand returns the polyquad command writing its results on out.
func NewCommand(out io.Writer) *cobra.Command {

	o := &Options{out: out}
	def := quadrature.DefaultParametersLiteral

	cmd := &cobra.Command{
		Use:   "polyquad",
		Short: "Integrate a polynomial with the rectangular and trapezoidal rules",
		Long: `polyquad evaluates a polynomial c[0] + c[1]*x + ... at intervals+1 equally
spaced points of [xmin, xmax] and integrates the samples with the rectangular
rule (left and right sums) and the trapezoidal rule.

Parameters are read from --config (YAML or JSON), then overridden by flags.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			o.flags = cmd.Flags()
			if err := o.Run(); err != nil {
				klog.Errorf("polyquad: %v", err)
				return err
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&o.Config, "config", "c", "", "Parameters file in YAML or JSON.")
	flags.Float64SliceVar(&o.Coefficients, "coefficients", def.Coefficients, "Polynomial coefficients c[0],c[1],...")
	flags.Float64Var(&o.XMin, "xmin", def.XMin, "Lower integration bound.")
	flags.Float64Var(&o.XMax, "xmax", def.XMax, "Upper integration bound.")
	flags.IntVarP(&o.Intervals, "intervals", "n", def.Intervals, "Number of equally spaced intervals.")
	flags.StringVar(&o.Precision, "precision", string(def.Precision), "Floating-point precision: float32 or float64.")
	flags.StringVar(&o.Seed, "seed", "", "Seed of the PRNG drawing random coefficients, any length. Random if empty.")
	flags.IntVar(&o.RandomDegree, "random-degree", 0, "If positive, replace the coefficients by a random polynomial of this degree.")
	flags.BoolVar(&o.Order, "order", false, "Also report the observed order of convergence of both rules.")
	flags.StringVar(&o.DumpGrid, "dump-grid", "", "Write the binary encoding of the sample grid to this file.")
	flags.StringVarP(&o.Output, "output", "o", "text", "Output format: text, json or yaml.")

	klogFlags := flag.NewFlagSet("klog", flag.ExitOnError)
	klog.InitFlags(klogFlags)
	cmd.PersistentFlags().AddGoFlagSet(klogFlags)

	return cmd
}

// Literal resolves the parameters literal from the defaults, the
// configuration file and the flags.
func (o *Options) Literal() (pl quadrature.ParametersLiteral, err error) {

	pl = quadrature.DefaultParametersLiteral
	pl.Coefficients = append([]float64(nil), pl.Coefficients...)

	if o.Config != "" {
		var data []byte
		if data, err = os.ReadFile(o.Config); err != nil {
			return pl, fmt.Errorf("cannot read %q: %w", o.Config, err)
		}

		// YAML is a superset of JSON.
		if err = yaml.Unmarshal(data, &pl); err != nil {
			return pl, fmt.Errorf("cannot decode %q: %w", o.Config, err)
		}

		klog.V(2).Infof("loaded parameters from %s", o.Config)
	}

	if o.changed("coefficients") {
		pl.Coefficients = o.Coefficients
	}
	if o.changed("xmin") {
		pl.XMin = o.XMin
	}
	if o.changed("xmax") {
		pl.XMax = o.XMax
	}
	if o.changed("intervals") {
		pl.Intervals = o.Intervals
	}
	if o.changed("precision") {
		pl.Precision = quadrature.Precision(o.Precision)
	}

	if o.RandomDegree > 0 {

		if o.Seed != "" {
			prng := sampling.NewSeededPRNG([]byte(o.Seed))
			pl.Coefficients = sampling.RandCoefficients(prng, o.RandomDegree+1, -10, 10)
			klog.V(2).Infof("drew %d coefficients from seed %q (%d bytes)", len(pl.Coefficients), o.Seed, prng.Drawn())
		} else {
			pl.Coefficients = sampling.RandCoefficients(sampling.NewPRNG(), o.RandomDegree+1, -10, 10)
		}
	}

	return
}

func (o *Options) changed(name string) bool {
	return o.flags != nil && o.flags.Changed(name)
}

// Run integrates the configured polynomial and prints the results.
func (o *Options) Run() (err error) {

	switch o.Output {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("unknown --output %q: must be text, json or yaml", o.Output)
	}

	var pl quadrature.ParametersLiteral
	if pl, err = o.Literal(); err != nil {
		return
	}

	var params quadrature.Parameters
	if params, err = quadrature.NewParametersFromLiteral(pl); err != nil {
		return
	}

	klog.V(2).Infof("parameters: coefficients=%v range=[%v, %v] intervals=%d precision=%s",
		params.Coefficients(), params.XMin(), params.XMax(), params.Intervals(), params.Precision())

	start := time.Now()

	var rep *quadrature.Report
	if rep, err = quadrature.Evaluate(params); err != nil {
		return
	}

	klog.V(2).Infof("evaluated %d samples in %s, grid digest %s", params.Intervals()+1, time.Since(start), rep.Digest)

	if !rep.Monotonic {
		klog.V(1).Info("samples are not monotonic: the rectangular sums do not bracket the integral")
	}

	doc := output{Report: rep}

	if o.Order {
		var order quadrature.Order
		if order, err = quadrature.ObservedOrder(params); err != nil {
			return
		}
		doc.Order = &order
	}

	if o.DumpGrid != "" {
		if err = dumpGrid(params, o.DumpGrid); err != nil {
			return
		}
	}

	return o.print(doc)
}

func (o *Options) print(doc output) (err error) {

	rep := doc.Report

	switch o.Output {
	case "text":
		fmt.Fprintf(o.out, "\nRectangular rule - The integral between %f and %f is in the interval: [%f,%f]\n",
			rep.Parameters.XMin, rep.Parameters.XMax, rep.Rectangular.Left, rep.Rectangular.Right)
		fmt.Fprintf(o.out, "\nTrapezoidal rule - The integral between %f and %f is : %f\n",
			rep.Parameters.XMin, rep.Parameters.XMax, rep.Trapezoidal)
		if doc.Order != nil {
			fmt.Fprintf(o.out, "\nObserved order of convergence - rectangular: %f, trapezoidal: %f\n",
				doc.Order.Rectangular, doc.Order.Trapezoidal)
		}
		return nil

	case "json":
		var data []byte
		if data, err = json.MarshalIndent(doc, "", "  "); err != nil {
			return
		}
		_, err = fmt.Fprintln(o.out, string(data))
		return

	case "yaml":
		var data []byte
		if data, err = yaml.Marshal(doc); err != nil {
			return
		}
		_, err = o.out.Write(data)
		return

	default:
		return fmt.Errorf("unknown --output %q: must be text, json or yaml", o.Output)
	}
}

func dumpGrid(params quadrature.Parameters, path string) (err error) {

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %q: %w", path, err)
	}

	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	var n int64
	switch params.Precision() {
	case quadrature.Double:
		n, err = writeGrid[float64](params, f)
	default:
		n, err = writeGrid[float32](params, f)
	}

	if err != nil {
		return fmt.Errorf("cannot write grid to %q: %w", path, err)
	}

	klog.V(2).Infof("wrote %d bytes to %s", n, path)

	return nil
}

func writeGrid[T quadrature.Float](params quadrature.Parameters, w io.Writer) (int64, error) {
	res, err := quadrature.RunParameters[T](params)
	if err != nil {
		return 0, err
	}
	return res.Grid.WriteTo(w)
}
