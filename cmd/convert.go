package cmd

import (
	"errors"
	"fmt"

	"url-classifier/classifier"

	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Write JSON artifacts into a SQLite artifact store",
	RunE:  runConvert,
}

func init() {
	convertCmd.Flags().String("vectorizer", "", "Vectorizer artifact to read")
	convertCmd.Flags().String("model", "", "Model artifact to read")
	convertCmd.Flags().String("out", "", "SQLite file to write (.db, .sqlite, .sqlite3)")
	convertCmd.Flags().Bool("skip-check", false, "Skip the vocabulary/coefficient consistency check")
}

func runConvert(cmd *cobra.Command, args []string) error {
	vectPath, _ := cmd.Flags().GetString("vectorizer")
	modelPath, _ := cmd.Flags().GetString("model")
	out, _ := cmd.Flags().GetString("out")
	skipCheck, _ := cmd.Flags().GetBool("skip-check")

	if vectPath == "" && modelPath == "" {
		return errors.New("nothing to convert: pass --vectorizer and/or --model")
	}
	if out == "" {
		return errors.New("--out is required")
	}

	var (
		v   *classifier.Vectorizer
		m   *classifier.Model
		err error
	)
	if vectPath != "" {
		if v, err = classifier.LoadVectorizer(vectPath); err != nil {
			return err
		}
	}
	if modelPath != "" {
		if m, err = classifier.LoadModel(modelPath); err != nil {
			return err
		}
	}
	if v != nil && m != nil && !skipCheck {
		if err := classifier.CheckConsistency(v, m); err != nil {
			return err
		}
	}

	if v != nil {
		if err := classifier.SaveVectorizerSQLite(out, v); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "vectorizer: %d terms -> %s\n", v.Size(), out)
	}
	if m != nil {
		if err := classifier.SaveModelSQLite(out, m); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "model: %d coefficients -> %s\n", len(m.Coefficients()), out)
	}
	return nil
}
