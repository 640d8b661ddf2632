package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/minidom/dom"
	"github.com/npillmayer/minidom/dom/domdbg"
	"github.com/npillmayer/minidom/dom/markup"
	"github.com/npillmayer/minidom/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/minidom/dom/w3cdom"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// tracer traces with key 'minidom.domdump'.
func tracer() tracing.Trace {
	return tracing.Select("minidom.domdump")
}

var formats = []string{"tree", "dot", "markup", "styles"}

func newRootCmd() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:   "domdump <file>",
		Short: "Parse a document and dump its tree",
		Long: "Domdump parses a document in the supported HTML subset and prints the resulting tree,\n" +
			"a GraphViz DOT graph, normalized markup or the rules of embedded stylesheets.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return dump(cmd, v, args[0])
		},
	}
	v.SetEnvPrefix("DOMDUMP")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd.Flags().StringP("format", "f", "tree", "Output format: "+strings.Join(formats, "|"))
	cmd.Flags().StringP("select", "s", "", "CSS selector; dump only the first matching node")
	cmd.Flags().Bool("strict", false, "Reject trailing content and mismatched close tags")
	cmd.Flags().Bool("comments", false, "Skip <!-- comments --> in element content")
	cmd.Flags().Int("max-depth", dom.DefaultMaxDepth, "Maximum element nesting depth (0 = unlimited)")
	cmd.Flags().Bool("debug", false, "Debug output")

	for _, name := range []string{"format", "select", "strict", "comments", "max-depth", "debug"} {
		_ = v.BindPFlag(name, cmd.Flags().Lookup(name))
	}
	return cmd
}

func dump(cmd *cobra.Command, v *viper.Viper, path string) error {
	if v.GetBool("debug") {
		t := gologadapter.New()
		t.SetOutput(cmd.ErrOrStderr())
		t.SetTraceLevel(tracing.LevelDebug)
		tracing.SetTraceSelector(tracing.SelectorForAdapter(func() tracing.Trace { return t }))
	}
	opts := []dom.Option{dom.MaxDepth(v.GetInt("max-depth"))}
	if v.GetBool("strict") {
		opts = append(opts, dom.Strict())
	}
	if v.GetBool("comments") {
		opts = append(opts, dom.SkipComments())
	}
	doc, err := dom.Load(path, opts...)
	if err != nil {
		return err
	}
	tracer().Debugf("loaded %s", doc.BaseURL)

	root := doc.Root
	if sel := v.GetString("select"); sel != "" {
		n, err := w3cdom.QuerySelector(doc, sel)
		if err != nil {
			return err
		}
		match, ok := n.Get()
		if !ok {
			return fmt.Errorf("domdump: no node matches %q", sel)
		}
		root = match
	}
	out := cmd.OutOrStdout()
	switch format := v.GetString("format"); format {
	case "tree":
		_, err = io.WriteString(out, domdbg.Print(root))
	case "dot":
		err = domdbg.ToGraphViz(root, out)
	case "markup":
		if root == doc.Root {
			err = markup.Render(out, doc)
		} else {
			err = markup.RenderNode(out, root)
		}
		if err == nil {
			_, err = io.WriteString(out, "\n")
		}
	case "styles":
		err = dumpStyles(out, doc)
	default:
		err = fmt.Errorf("domdump: unknown format %q, want one of %s", format, strings.Join(formats, ", "))
	}
	return err
}

func dumpStyles(w io.Writer, doc *dom.Document) error {
	sheets, err := douceuradapter.ExtractStyleElements(doc)
	if err != nil {
		return err
	}
	for i, sheet := range sheets {
		fmt.Fprintf(w, "/* stylesheet %d */\n", i+1)
		for _, r := range sheet.Rules() {
			fmt.Fprintf(w, "%s {\n", r.Selector())
			seen := make(map[string]bool)
			for _, p := range r.Properties() {
				if seen[p] {
					continue
				}
				seen[p] = true
				imp := ""
				if r.IsImportant(p) {
					imp = " !important"
				}
				fmt.Fprintf(w, "  %s: %s%s;\n", p, r.Value(p), imp)
			}
			fmt.Fprintln(w, "}")
		}
	}
	return nil
}
