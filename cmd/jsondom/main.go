// Command jsondom parses JSON documents and prints them back in a
// normalized form: ordered keys, configurable indentation, ASCII-only
// strings. It can also rewrite object keys to a different case convention
// and rewrite files in place, processing many files concurrently.
package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/alecthomas/kong"
	"github.com/iancoleman/strcase"
	"github.com/panjf2000/ants/v2"

	"github.com/KimNorgaard/go-jsondom"
)

// CLI defines the command-line interface.
var CLI struct {
	Paths    []string `arg:"" optional:"" help:"Input files. Reads stdin when omitted." type:"existingfile"`
	Write    bool     `help:"Rewrite files in place instead of printing to stdout." short:"w"`
	Indent   int      `help:"Spaces per indentation level." short:"i" default:"2"`
	Compact  bool     `help:"Emit single-line output with no whitespace." short:"c"`
	Keys     string   `help:"Rewrite object keys to the given case." enum:"none,camel,pascal,snake,kebab" default:"none"`
	Jobs     int      `help:"Files processed concurrently. 0 means one per CPU." short:"j" default:"0"`
	MaxDepth int      `help:"Reject documents nested deeper than this. 0 means no limit." default:"0"`
}

// caseFns maps the --keys choice to its converter.
var caseFns = map[string]func(string) string{
	"camel":  strcase.ToLowerCamel,
	"pascal": strcase.ToCamel,
	"snake":  strcase.ToSnake,
	"kebab":  strcase.ToKebab,
}

func main() {
	k := kong.Must(&CLI,
		kong.Name("jsondom"),
		kong.Description("Normalize and reformat JSON documents."),
		kong.UsageOnError(),
	)
	if _, err := k.Parse(os.Args[1:]); err != nil {
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	var popts []jsondom.Option
	if CLI.MaxDepth > 0 {
		popts = append(popts, jsondom.MaxDepth(CLI.MaxDepth))
	}
	sopts := []jsondom.Option{jsondom.Indent(CLI.Indent)}
	if CLI.Compact {
		sopts = []jsondom.Option{jsondom.Compact()}
	}

	if len(CLI.Paths) == 0 {
		if CLI.Write {
			return fmt.Errorf("cannot write in place when reading from stdin")
		}
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		out, err := transform(data, popts, sopts)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}

	jobs := CLI.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	pool, err := ants.NewPool(jobs)
	if err != nil {
		return err
	}
	defer pool.Release()

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex // serializes stdout between workers
		failed atomic.Int32
	)
	for _, path := range CLI.Paths {
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			out, err := processPath(path, popts, sopts)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
				failed.Add(1)
				return
			}
			if CLI.Write {
				if err := os.WriteFile(path, []byte(out+"\n"), 0o644); err != nil {
					fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
					failed.Add(1)
				}
				return
			}
			mu.Lock()
			fmt.Println(out)
			mu.Unlock()
		}); err != nil {
			wg.Done()
			return err
		}
	}
	wg.Wait()

	if n := failed.Load(); n > 0 {
		return fmt.Errorf("%d of %d files failed", n, len(CLI.Paths))
	}
	return nil
}

func processPath(path string, popts, sopts []jsondom.Option) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return transform(data, popts, sopts)
}

func transform(data []byte, popts, sopts []jsondom.Option) (string, error) {
	doc, err := jsondom.ParseBytes(data, popts...)
	if err != nil {
		return "", err
	}
	if fn := caseFns[CLI.Keys]; fn != nil {
		if doc, err = rewriteKeys(doc, fn); err != nil {
			return "", err
		}
	}
	return jsondom.Serialize(doc, sopts...)
}

// rewriteKeys rebuilds obj with every key passed through fn, recursing into
// nested objects and arrays. Two keys collapsing to the same name surface
// the model's duplicate-key error.
func rewriteKeys(obj *jsondom.Object, fn func(string) string) (*jsondom.Object, error) {
	out := jsondom.NewObject()
	for k, v := range obj.All() {
		nv, err := rewriteValue(v, fn)
		if err != nil {
			return nil, err
		}
		if err := out.Add(fn(k), nv); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func rewriteValue(v jsondom.Value, fn func(string) string) (jsondom.Value, error) {
	switch v := v.(type) {
	case *jsondom.Object:
		return rewriteKeys(v, fn)
	case jsondom.Array:
		out := make(jsondom.Array, len(v))
		for i, elem := range v {
			nv, err := rewriteValue(elem, fn)
			if err != nil {
				return nil, err
			}
			out[i] = nv
		}
		return out, nil
	default:
		return v, nil
	}
}
