// Package memo is the Composition Root for the memo note keeper.
//
// It connects the notebook service (application state) with a key-value
// storage adapter using the Hexagonal Architecture pattern.
//
// Notes are short titled texts with a category and a pin flag. The whole
// collection is persisted as one JSON document under the "notes" key; the UI
// theme flag lives under "darkMode". Collections can be exported to and
// imported from JSON or YAML files.
//
// Usage:
//
//	svc, closeFn, err := memo.New(ctx, "./.memo",
//		memo.WithAdapter("sqlite"),
//		memo.WithLogger(logger),
//	)
//	defer closeFn()
//
//	note, err := svc.Save(ctx, core.Draft{Content: "buy milk", Category: core.CategoryPersonal}, "")
package memo
