package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kailas-cloud/medanswer/internal/domain"
	treerepo "github.com/kailas-cloud/medanswer/internal/repository/tree"
	"github.com/kailas-cloud/medanswer/internal/text"
	answeruc "github.com/kailas-cloud/medanswer/internal/usecase/answer"
	"github.com/kailas-cloud/medanswer/internal/usecase/match"
	"github.com/kailas-cloud/medanswer/internal/usecase/preprocess"
)

type askOptions struct {
	treePath      string
	stopwordsPath string
	stemmer       string
	responseOnly  bool
}

type answerJSON struct {
	Query    string   `json:"query"`
	Response any      `json:"response"`
	Path     []string `json:"path"`
}

var askOpts askOptions

var askCmd = &cobra.Command{
	Use:   "ask <query>",
	Short: "Answer one query against a tree file",
	Long: `ask normalizes the query, walks the document tree from the root and prints
the most specific matching subtree as JSON. A query that matches nothing
prints a null response.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAsk(cmd.Context(), cmd.OutOrStdout(), askOpts, strings.Join(args, " "))
	},
}

func init() {
	askCmd.Flags().StringVar(&askOpts.treePath, "tree", "data/data.json", "document tree JSON file")
	askCmd.Flags().StringVar(&askOpts.stopwordsPath, "stopwords", "data/stopwords.txt", "newline-delimited stopword list")
	askCmd.Flags().StringVar(&askOpts.stemmer, "stemmer", "porter2", "stemming algorithm: porter2, snowball, none")
	askCmd.Flags().BoolVar(&askOpts.responseOnly, "response-only", false, "print only the matched node")

	rootCmd.AddCommand(askCmd)
}

func runAsk(ctx context.Context, w io.Writer, opts askOptions, query string) error {
	if strings.TrimSpace(query) == "" {
		return domain.ErrEmptyQuery
	}

	stopwords, err := text.LoadStopwordsFile(opts.stopwordsPath)
	if err != nil {
		return fmt.Errorf("load stopwords: %w", err)
	}
	stemmer, err := text.NewStemmer(opts.stemmer)
	if err != nil {
		return fmt.Errorf("create stemmer: %w", err)
	}
	root, err := treerepo.LoadFile(opts.treePath)
	if err != nil {
		return fmt.Errorf("load tree: %w", err)
	}

	pre := preprocess.New(text.NewTokenizer(), stemmer, stopwords)
	a := answeruc.New(root, pre, match.New(pre)).Answer(ctx, query)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if opts.responseOnly {
		return enc.Encode(a.Response())
	}

	path := a.Path()
	if path == nil {
		path = []string{}
	}
	return enc.Encode(answerJSON{Query: a.Query(), Response: a.Response(), Path: path})
}
