// Command gdlemma lemmatizes Scottish Gaelic words and CoNLL-U files from the
// command line.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"gdtools.org/lemmatizer/lemmatizer"
	"gdtools.org/lemmatizer/lexicon"
	"gdtools.org/lemmatizer/logger"
	"gdtools.org/lemmatizer/pipeline"
	"gdtools.org/lemmatizer/subcat"
	"gdtools.org/lemmatizer/types"
	"github.com/alecthomas/kong"
	"io"
	"os"
	"path"
	"strings"
)

type CLI struct {
	Resources string `name:"resources" short:"r" env:"GDL_RESOURCES_PATH" default:"resources" type:"path" help:"Resources folder with lemmatizer/ and subcat/ tables"`

	Word   WordCmd   `cmd:"" help:"Lemmatize a single word"`
	File   FileCmd   `cmd:"" help:"Run a pipeline configuration over a CoNLL-U file and print the result"`
	Frames FramesCmd `cmd:"" help:"Print the subcategorisation frames of a verb lemma"`
}

type runContext struct {
	resources string
	out       io.Writer
}

func (rc *runContext) lemmatizer() (*lemmatizer.Lemmatizer, error) {
	lex, err := lexicon.Load(path.Join(rc.resources, "lemmatizer"))
	if err != nil {
		return nil, err
	}
	return lemmatizer.New(lex), nil
}

type WordCmd struct {
	Surface string `arg:"" help:"Word form"`
	XPOS    string `name:"xpos" short:"x" help:"ARCOSG tag; omit for untagged lookup"`
}

func (c *WordCmd) Run(rc *runContext) error {
	lem, err := rc.lemmatizer()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(rc.out, lem.Lemmatize(c.Surface, c.XPOS))
	return err
}

type FileCmd struct {
	Path   string `arg:"" type:"existingfile" help:"CoNLL-U file"`
	Config string `name:"config" short:"c" default:"configs/treebank.yaml" type:"path" help:"Pipeline configuration file"`
}

func (c *FileCmd) Run(rc *runContext) error {
	cfg, err := types.LoadConfiguration(c.Config)
	if err != nil {
		return err
	}
	lem, err := rc.lemmatizer()
	if err != nil {
		return err
	}
	ppln, err := pipeline.Treebank(pipeline.GetTreebankParams(rc.resources, lem, []types.Configuration{cfg}))
	if err != nil {
		return err
	}
	text, err := os.ReadFile(c.Path)
	if err != nil {
		return err
	}

	res := <-ppln(pipeline.Request{Text: string(text), Tid: c.Path})
	var responses map[string]struct {
		types.TreebankResponse
		Error string `json:"error"`
	}
	if err = json.Unmarshal([]byte(res), &responses); err != nil {
		return err
	}
	response, ok := responses[cfg.Name]
	if !ok {
		return errors.New("pipeline returned no result")
	}
	if response.Error != "" {
		return errors.New(response.Error)
	}
	_, err = io.WriteString(rc.out, response.Conllu)
	return err
}

type FramesCmd struct {
	Lemma string `arg:"" help:"Verb lemma"`
}

func (c *FramesCmd) Run(rc *runContext) error {
	lem, err := rc.lemmatizer()
	if err != nil {
		return err
	}
	sub, err := subcat.Load(path.Join(rc.resources, "subcat", subcat.SubcatFile), lem)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(rc.out, strings.Join(sub.Frames(c.Lemma), " "))
	return err
}

func run(args []string, out io.Writer) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("gdlemma"),
		kong.Description("Scottish Gaelic lemmatizer"),
		kong.UsageOnError(),
	)
	if err != nil {
		return err
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	return ctx.Run(&runContext{resources: cli.Resources, out: out})
}

func main() {
	logger.SetupLogging()
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "gdlemma:", err)
		os.Exit(1)
	}
}
