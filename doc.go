// Package medanswer answers short healthcare questions from a pre-built
// three-level document tree (condition, aspect, payload).
//
// A query is reduced to a set of stemmed keywords; the tree is then walked
// greedily from the root, at each level taking the label that shares the
// most keywords with the query.
//
//	client, _ := medanswer.New(
//	    medanswer.WithTreeFile("data/data.json"),
//	    medanswer.WithStopwordsFile("data/stopwords.txt"),
//	)
//	defer client.Close()
//
//	ans, _ := client.Answer(ctx, "What are the symptoms of cancer?")
//	fmt.Println(ans.Path, ans.Response) // [Cancer Symptoms] map[URL:...]
//
// The tree can also be read from Redis or Valkey (see WithValkey) after it
// was seeded with medanswer-cli seed.
package medanswer
