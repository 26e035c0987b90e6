// Command taimeta inspects TAI attribute metadata and converts attribute
// values between their text and binary forms.
//
//	taimeta objects
//	taimeta list-attr networkif
//	taimeta describe module oper-status
//	taimeta --human convert networkif tx-align-status "loss|out"
//	taimeta --json --human convert hostif lane-fault "loss-of-lock, tx-fifo-err"
//	taimeta cbor networkif tx-align-status "loss|out"
//	taimeta cbor-decode networkif tx-align-status 820102
package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/pflag"

	"github.com/oopt-tai/taimeta"
	"github.com/oopt-tai/taimeta/tai"
)

const usage = `usage: taimeta [flags] <command> [args]

commands:
  objects                             list object types
  list-attr <object>                  list the attributes of an object
  describe <object> <attr>            show the metadata of an attribute
  convert <object> <attr> <value>     parse a value and print it
  cbor <object> <attr> <value>        print the binary form of a value, hex encoded
  cbor-decode <object> <attr> <hex>   print the text form of a binary value

flags:
`

type options struct {
	human     bool
	json      bool
	valueOnly bool
	inputJSON bool
	custom    string
	verbose   bool
}

func main() {
	level := new(slog.LevelVar)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(os.Args[1:], os.Stdout, logger, level); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(2)
		}
		logger.Error("taimeta failed", "error", err, "status", taimeta.StatusOf(err))
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer, logger *slog.Logger, level *slog.LevelVar) error {
	var opts options

	flags := pflag.NewFlagSet("taimeta", pflag.ContinueOnError)
	flags.SetOutput(stdout)
	flags.BoolVar(&opts.human, "human", false, "use human-readable names")
	flags.BoolVar(&opts.json, "json", false, "print JSON")
	flags.BoolVar(&opts.valueOnly, "value-only", false, "omit the attribute name")
	flags.BoolVar(&opts.inputJSON, "input-json", false, "parse input values as JSON")
	flags.StringVar(&opts.custom, "custom", "", "YAML table of vendor attributes to register")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug messages")
	flags.Usage = func() {
		fmt.Fprint(stdout, usage)
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return err
	}
	if opts.verbose && level != nil {
		level.Set(slog.LevelDebug)
	}

	args = flags.Args()
	if len(args) == 0 {
		flags.Usage()
		return pflag.ErrHelp
	}

	reg, err := loadRegistry(opts.custom, logger)
	if err != nil {
		return err
	}

	cmd, args := args[0], args[1:]
	switch cmd {
	case "objects":
		return listObjects(stdout, reg)
	case "list-attr":
		if len(args) != 1 {
			return fmt.Errorf("usage: taimeta list-attr <object>")
		}
		return listAttributes(stdout, reg, args[0])
	case "describe":
		if len(args) != 2 {
			return fmt.Errorf("usage: taimeta describe <object> <attr>")
		}
		meta, err := lookup(reg, args[0], args[1])
		if err != nil {
			return err
		}
		return describe(stdout, meta)
	case "convert", "cbor":
		if len(args) != 3 {
			return fmt.Errorf("usage: taimeta %s <object> <attr> <value>", cmd)
		}
		meta, err := lookup(reg, args[0], args[1])
		if err != nil {
			return err
		}
		in := &taimeta.SerializeOption{ValueOnly: true, JSON: opts.inputJSON}
		v, err := taimeta.DeserializeValue(args[2], meta, nil, in)
		if err != nil {
			return err
		}
		logger.Debug("parsed value", "attr", meta.Name, "type", meta.ValueType, "len", taimeta.Len(v))
		if cmd == "cbor" {
			data, err := taimeta.MarshalValue(meta, v)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(stdout, hex.EncodeToString(data))
			return err
		}
		return printValue(stdout, meta, v, opts)
	case "cbor-decode":
		if len(args) != 3 {
			return fmt.Errorf("usage: taimeta cbor-decode <object> <attr> <hex>")
		}
		meta, err := lookup(reg, args[0], args[1])
		if err != nil {
			return err
		}
		data, err := hex.DecodeString(args[2])
		if err != nil {
			return fmt.Errorf("decoding hex: %w", err)
		}
		v, err := taimeta.UnmarshalValue(data, meta, nil)
		if err != nil {
			return err
		}
		return printValue(stdout, meta, v, opts)
	}
	return fmt.Errorf("unknown command %q", cmd)
}

func loadRegistry(custom string, logger *slog.Logger) (*taimeta.Registry, error) {
	if custom == "" {
		return tai.Registry(), nil
	}
	attrs, err := taimeta.LoadAttributesYAML(custom, tai.Objects())
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded custom attributes", "path", custom, "count", len(attrs))
	return tai.NewRegistry(taimeta.WithCustomAttributes(attrs...))
}

func lookup(reg *taimeta.Registry, object, attr string) (*taimeta.AttrMetadata, error) {
	info, ok := reg.ObjectByName(object)
	if !ok {
		return nil, fmt.Errorf("unknown object %q: %w", object, taimeta.ErrNotFound)
	}
	human := !strings.HasPrefix(attr, info.AttrPrefix)
	return reg.MetadataByObjectName(info.Type, attr, &taimeta.SerializeOption{Human: human})
}

func printValue(w io.Writer, meta *taimeta.AttrMetadata, v taimeta.Value, opts options) error {
	out := &taimeta.SerializeOption{Human: opts.human, JSON: opts.json, ValueOnly: opts.valueOnly}
	if err := taimeta.WriteAttribute(w, meta, &taimeta.Attribute{ID: meta.AttrID, Value: v}, out); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

var headerStyle = lipgloss.NewStyle().Bold(true)

func listObjects(w io.Writer, reg *taimeta.Registry) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(tableStyle).
		Headers("TYPE", "NAME", "ATTRIBUTES")
	for _, info := range reg.Objects() {
		t.Row(strconv.Itoa(int(info.Type)), info.Name, strconv.Itoa(len(reg.Attributes(info.Type))))
	}
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func listAttributes(w io.Writer, reg *taimeta.Registry, object string) error {
	info, ok := reg.ObjectByName(object)
	if !ok {
		return fmt.Errorf("unknown object %q: %w", object, taimeta.ErrNotFound)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(tableStyle).
		Headers("ID", "NAME", "TYPE", "FLAGS", "USAGE")
	for _, meta := range reg.Attributes(info.Type) {
		t.Row(
			formatAttrID(meta.AttrID),
			meta.HumanName(),
			meta.ValueType.String(),
			strings.ToLower(meta.Flags.String()),
			meta.Usage(),
		)
	}
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func tableStyle(row, _ int) lipgloss.Style {
	if row == table.HeaderRow {
		return headerStyle.Padding(0, 1)
	}
	return lipgloss.NewStyle().Padding(0, 1)
}

func formatAttrID(id taimeta.AttrID) string {
	if id >= taimeta.CustomRangeStart {
		return "0x" + strconv.FormatInt(int64(id), 16)
	}
	return strconv.Itoa(int(id))
}

func describe(w io.Writer, meta *taimeta.AttrMetadata) error {
	var b strings.Builder
	fmt.Fprintf(&b, "name:       %s\n", meta.Name)
	fmt.Fprintf(&b, "short name: %s\n", meta.HumanName())
	fmt.Fprintf(&b, "id:         %s\n", formatAttrID(meta.AttrID))
	fmt.Fprintf(&b, "type:       %s\n", meta.ValueType)
	if meta.ValueType == taimeta.ValueTypeAttrList {
		fmt.Fprintf(&b, "element:    %s\n", meta.ElemValueType)
	}
	if meta.Flags != 0 {
		fmt.Fprintf(&b, "flags:      %s\n", meta.Flags)
	}
	if meta.Enum != nil {
		fmt.Fprintf(&b, "enum:       %s\n", meta.Enum.Name)
	}
	if meta.Default != nil {
		def, err := taimeta.FormatValue(meta, meta.Default, &taimeta.SerializeOption{Human: true})
		if err != nil {
			return err
		}
		fmt.Fprintf(&b, "default:    %s\n", def)
	}
	fmt.Fprintf(&b, "usage:      %s\n", meta.Usage())
	if meta.Brief != "" {
		fmt.Fprintf(&b, "brief:      %s\n", meta.Brief)
	}
	_, err := io.WriteString(w, b.String())
	return err
}
