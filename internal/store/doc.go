// Package store persists the library as a single pretty-printed JSON
// document.
//
// A Store holds an exclusive lock next to the document for as long as it
// is open, so two processes never write the same library:
//
//	st, err := store.Open("data/library.json", logger)
//	if err != nil {
//		return err
//	}
//	defer st.Close()
//
//	// An empty library if the document is missing or unreadable.
//	lib := st.Load()
//
//	// st is the command.Saver: every change is written back.
//	h := library.NewHandler(lib, st, probe, logger)
//
// Saves rewrite the whole document in place; they are not transactional.
package store
