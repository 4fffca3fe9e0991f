package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/answers"
	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/export"
	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/playbook"
	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/scoring"
	"github.com/rubabzahra2481/EDNAfrontend-sub001/internal/templates"
)

// Output formats of the score command.
const (
	formatJSON     = "json"
	formatMarkdown = "markdown"
	formatPretty   = "pretty"
)

type scoreOptions struct {
	answersPath string
	profilePath string
	format      string
	playbook    bool
	save        bool
	respondent  string
	plain       bool
}

func newScoreCmd(a *app) *cobra.Command {
	opts := &scoreOptions{}
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a file of quiz answers",
		Long: "Score a JSON array of quiz answers and print the profile.\n" +
			"Use --answers - to read the answers from stdin, or --profile to\n" +
			"re-render a profile written earlier with --format json.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runScore(cmd, opts)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.answersPath, "answers", "", "path to the answers JSON file, or - for stdin")
	f.StringVar(&opts.profilePath, "profile", "", "path to a JSON profile from a previous run, or - for stdin")
	f.StringVar(&opts.format, "format", formatMarkdown, "output format: json, markdown or pretty")
	f.BoolVar(&opts.playbook, "playbook", false, "print the personalised playbook instead of the profile")
	f.BoolVar(&opts.save, "save", false, "store the profile in the results database")
	f.StringVar(&opts.respondent, "respondent", "", "respondent name stored with the profile")
	f.BoolVar(&opts.plain, "plain", false, "disable colours in pretty output")
	cmd.MarkFlagsOneRequired("answers", "profile")
	cmd.MarkFlagsMutuallyExclusive("answers", "profile")
	cmd.MarkFlagsMutuallyExclusive("profile", "save")
	return cmd
}

func (a *app) runScore(cmd *cobra.Command, opts *scoreOptions) error {
	switch opts.format {
	case formatJSON, formatMarkdown, formatPretty:
	default:
		return fmt.Errorf("unknown format %q (use json, markdown or pretty)", opts.format)
	}
	if opts.playbook && opts.format == formatJSON {
		return fmt.Errorf("--playbook renders Markdown; use --format markdown or pretty")
	}

	if opts.profilePath != "" {
		c, err := readProfile(cmd.InOrStdin(), opts.profilePath)
		if err != nil {
			return err
		}
		return a.writeProfile(cmd, c, opts)
	}

	data, err := readAnswers(cmd.InOrStdin(), opts.answersPath)
	if err != nil {
		return err
	}
	all, err := answers.Parse(data)
	if err != nil {
		return err
	}
	if cov := answers.Coverage(all); !cov.Complete() {
		a.logger.Warn("answer set is incomplete",
			zap.Int("coverage", cov.Score),
			zap.Ints("missing_layers", cov.Missing),
		)
	}
	c, err := scoring.Score(all)
	if err != nil {
		return fmt.Errorf("scoring: %w", err)
	}
	a.logger.Debug("profile scored",
		zap.String("core_type", string(c.Layer1.CoreType)),
		zap.Int("total_questions", c.TotalQuestions),
	)

	if opts.save {
		store, err := a.openStore()
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()
		rec, err := store.Save(opts.respondent, c, all)
		if err != nil {
			return err
		}
		a.logger.Info("profile saved", zap.String("id", rec.ID), zap.String("respondent", opts.respondent))
		fmt.Fprintf(cmd.ErrOrStderr(), "saved profile %s\n", rec.ID)
	}
	return a.writeProfile(cmd, c, opts)
}

func (a *app) writeProfile(cmd *cobra.Command, c *scoring.Composite, opts *scoreOptions) error {
	out, err := a.renderProfile(c, opts)
	if err != nil {
		return err
	}
	_, err = io.WriteString(cmd.OutOrStdout(), out)
	return err
}

func (a *app) renderProfile(c *scoring.Composite, opts *scoreOptions) (string, error) {
	if opts.format == formatJSON {
		data, err := export.JSON(c)
		if err != nil {
			return "", err
		}
		return string(data) + "\n", nil
	}

	renderer, err := templates.NewRenderer()
	if err != nil {
		return "", err
	}
	var md string
	if opts.playbook {
		md, err = playbook.Markdown(renderer, playbook.Generate(c))
	} else {
		md, err = export.Markdown(renderer, c)
	}
	if err != nil {
		return "", err
	}
	if opts.format == formatPretty {
		return export.RenderTerminal(md, a.cfg.RenderWidth, opts.plain)
	}
	return md, nil
}

func readAnswers(stdin io.Reader, path string) ([]byte, error) {
	data, err := readInput(stdin, path)
	if err != nil {
		return nil, fmt.Errorf("reading answers: %w", err)
	}
	return data, nil
}

// readProfile loads a document written by score --format json.
func readProfile(stdin io.Reader, path string) (*scoring.Composite, error) {
	data, err := readInput(stdin, path)
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}
	p, err := export.ParseProfile(data)
	if err != nil {
		return nil, err
	}
	return p.Composite(), nil
}

// readInput reads path, or stdin when path is "-".
func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}
