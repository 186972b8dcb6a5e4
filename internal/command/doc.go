// Package command provides the reversible unit of work used for every
// library mutation, and the linear history that runs and undoes it.
//
// # Commands
//
// A Command mutates a model.Library in Execute and reverts exactly that
// mutation in Undo. Execute reports whether anything was applied:
//
//   - (true, nil): the model changed; the command is pushed onto the history
//   - (false, nil): a required input was missing; nothing changed
//   - (false, err): an integrity rule rejected the change; nothing changed
//
// # History
//
// History is a single stack with no redo:
//
//	h := command.NewHistory(lib, saver, logger)
//	applied, err := h.Submit(cmd)
//	h.UndoLast() // pops and undoes cmd; a no-op on an empty stack
//
// After every applied Execute and every Undo the whole library is handed to
// the Saver. A save failure is logged and the in-memory change is kept.
//
// History is not safe for concurrent use.
package command
