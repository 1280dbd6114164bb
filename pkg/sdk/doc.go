// Package strdex provides an embedded Go client for the strdex string
// analysis service. It wires the analysis engine directly over a store,
// without going through HTTP.
//
//	client, _ := strdex.New(ctx)
//	rec, _ := client.CreateString(ctx, "racecar")
//	fmt.Println(rec.IsPalindrome) // true
//
//	pal := true
//	matched, _ := client.ListStrings(ctx, strdex.Filters{IsPalindrome: &pal})
//
//	res, _ := client.Query(ctx, "all single word palindromic strings")
//	fmt.Println(res.ParsedFilters)
//
// By default records live in process memory. Use WithRedis to persist them:
//
//	client, _ := strdex.New(ctx, strdex.WithRedis("localhost:6379", ""))
package strdex
