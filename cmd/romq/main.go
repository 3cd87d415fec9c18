// Command romq runs relational operators over datasets stored as YAML or
// JSON files and prints the result.
//
//	romq --data parts.yaml --join orders.yaml --where Color=Red \
//	     --project PNO,SNO,Qty --order Qty,SNO --nils first
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/pdswan/rom"
	"github.com/pdswan/rom/att"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "romq:", err)
		os.Exit(1)
	}
}

type query struct {
	data    string
	joins   []string
	where   []string
	project []string
	rename  []string
	orderBy []string
	format  string
}

func run(args []string, out io.Writer) error {
	fs := pflag.NewFlagSet("romq", pflag.ContinueOnError)
	var q query
	var configPath string
	fs.StringVar(&configPath, "config", "", "YAML config file")
	fs.StringVarP(&q.data, "data", "d", "", "YAML or JSON file holding the source dataset")
	fs.StringSliceVarP(&q.joins, "join", "j", nil, "files to join with the source dataset, in order")
	fs.StringArrayVarP(&q.where, "where", "w", nil, "restrict to tuples where name=value (repeatable)")
	fs.StringSliceVarP(&q.project, "project", "p", nil, "attributes to keep")
	fs.StringSliceVar(&q.rename, "rename", nil, "attributes to rename, as old=new")
	fs.StringSliceVarP(&q.orderBy, "order", "o", nil, "attributes to order by")
	fs.StringVarP(&q.format, "format", "f", "table", "output format: table, yaml or json")
	fs.String("nils", "last", "place null values first or last when ordering")
	fs.Int("workers", 1, "goroutines used to match tuples in joins, 0 for GOMAXPROCS")
	fs.String("collation", "", "language tag whose collation orders strings")
	fs.String("log-level", "", "log level (debug shows operator traces)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if q.data == "" {
		return fmt.Errorf("--data is required")
	}

	v := viper.New()
	v.SetEnvPrefix("ROM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, flag := range map[string]string{
		"nils":         "nils",
		"join_workers": "workers",
		"collation":    "collation",
		"log.level":    "log-level",
	} {
		if err := v.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return err
		}
	}
	cfg, err := rom.ReadConfig(v, configPath)
	if err != nil {
		return err
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}

	d, err := q.eval(opts)
	if err != nil {
		return err
	}
	return write(out, d, q.format)
}

func (q *query) eval(opts []rom.Option) (*rom.Dataset, error) {
	d, err := rom.LoadFile(q.data, opts...)
	if err != nil {
		return nil, err
	}

	for _, path := range q.joins {
		d2, err := rom.LoadFile(path, opts...)
		if err != nil {
			return nil, err
		}
		d = d.Join(d2)
	}

	if len(q.where) > 0 {
		eq := make(map[att.Attribute]any, len(q.where))
		for _, w := range q.where {
			name, val, err := parseWhere(w)
			if err != nil {
				return nil, err
			}
			eq[name] = val
		}
		if d, err = d.Restrict(att.Equality(eq)); err != nil {
			return nil, err
		}
	}

	// order before projecting, so sort keys can be dropped from the output
	if len(q.orderBy) > 0 {
		if d, err = d.Order(att.Attributes(q.orderBy...)...); err != nil {
			return nil, err
		}
	}

	if len(q.project) > 0 {
		d = d.Project(att.Attributes(q.project...)...)
	}

	if len(q.rename) > 0 {
		names := make(map[att.Attribute]att.Attribute, len(q.rename))
		for _, r := range q.rename {
			old, name, ok := strings.Cut(r, "=")
			if !ok || old == "" || name == "" {
				return nil, fmt.Errorf("invalid --rename %q, expected old=new", r)
			}
			names[att.Attribute(old)] = att.Attribute(name)
		}
		d = d.Rename(names)
	}

	return d, nil
}

// parseWhere splits name=value, reading the value as a YAML scalar so that
// id=1 compares with the integer 1 and id=null with null.
func parseWhere(w string) (att.Attribute, any, error) {
	name, raw, ok := strings.Cut(w, "=")
	if !ok || name == "" {
		return "", nil, fmt.Errorf("invalid --where %q, expected name=value", w)
	}
	var val any
	if err := yaml.Unmarshal([]byte(raw), &val); err != nil {
		return "", nil, fmt.Errorf("invalid --where value %q: %w", raw, err)
	}
	return att.Attribute(name), val, nil
}

func write(w io.Writer, d *rom.Dataset, format string) error {
	switch format {
	case "table":
		_, err := fmt.Fprintln(w, d.String())
		return err
	case "yaml":
		return d.WriteYAML(w)
	case "json":
		b, err := d.MarshalJSON()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	}
	return fmt.Errorf("unknown format %q, expected table, yaml or json", format)
}
