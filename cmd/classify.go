package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"url-classifier/classifier"

	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <url>...",
	Short: "Classify URLs from the command line",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runClassify,
}

func runClassify(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log.SetOutput(cmd.ErrOrStderr())

	predictor, err := loadPredictor(cfg, log)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, raw := range args {
		url := strings.TrimSpace(raw)
		switch {
		case url == "":
			fmt.Fprintf(w, "%q\tPlease enter a URL.\n", raw)
			continue
		case utf8.RuneCountInString(url) > cfg.MaxURLLength:
			fmt.Fprintf(w, "%.40s...\tURL is too long.\n", url)
			continue
		}

		pred := predictor.Predict(url)
		fmt.Fprintf(w, "%s\t%s\tconfidence %s%%\tP(GOOD) %s%%\tP(BAD) %s%%\n",
			url, pred.Label,
			classifier.Percent(pred.Confidence),
			classifier.Percent(pred.ProbGood),
			classifier.Percent(pred.ProbBad))
		for _, cue := range pred.Cues {
			fmt.Fprintf(w, "\t%s\t%+.3f\t\t\n", cue.Token, cue.Weight)
		}
	}
	return w.Flush()
}
