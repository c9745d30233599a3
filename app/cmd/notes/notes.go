package notes

import (
	"context"
	"fmt"
	"github.com/ribgsilva/sticky-notes/business/v1/note"
	"github.com/ribgsilva/sticky-notes/persistence/v1/kv"
	pnote "github.com/ribgsilva/sticky-notes/persistence/v1/note"
	"github.com/ribgsilva/sticky-notes/platform/storage"
	"github.com/ribgsilva/sticky-notes/sys"
	"go.uber.org/zap"
	"io"
	"os"
	"strings"
)

func ListCommands() {
	println("Notes Commands")
	println("\tlist\t\t\t- Prints the stored notes in display order")
	println("\tclear\t\t\t- Replaces the stored notes with an empty collection")
	println("\thelp\t\t\t- Print the commands available")
}

func Run(options []string) {
	if len(options) == 0 {
		ListCommands()
		return
	}
	// empty logger
	log := zap.NewNop().Sugar()
	storage.LoadConfigs(log)

	ctx := context.Background()
	store, closeFn, err := storage.Open(ctx, log)
	if err != nil {
		println("error:", err.Error())
		return
	}
	defer closeFn()

	switch options[0] {
	case "list":
		if err := List(ctx, os.Stdout, log, store); err != nil {
			println("failed to list notes:", err.Error())
		}
	case "clear":
		if err := Clear(ctx, log, store); err != nil {
			println("failed to clear notes:", err.Error())
		} else {
			println("cleared notes")
		}
	case "help":
		fallthrough
	default:
		ListCommands()
	}
}

// List writes every stored note to w, one block per note
func List(ctx context.Context, w io.Writer, log *zap.SugaredLogger, store kv.Store) error {
	adapter := pnote.NewAdapter(log, store, sys.Configs.Storage.Key)
	loaded, err := adapter.Load(ctx)
	if err != nil {
		return err
	}

	if len(loaded) == 0 {
		_, err := fmt.Fprintln(w, note.EmptyHint)
		return err
	}
	for i, p := range loaded {
		n := note.Note(p)
		mark := ""
		if n.IsImportant {
			mark = " (!)"
		}
		if _, err := fmt.Fprintf(w, "#%d [%d] %s%s %s\n", i, n.Id, n.Title, mark, n.CreatedAt); err != nil {
			return err
		}
		for _, line := range n.Lines() {
			if _, err := fmt.Fprintf(w, "\t%s\n", strings.TrimRight(line, " ")); err != nil {
				return err
			}
		}
	}
	return nil
}

// Clear stores an empty collection under the configured key
func Clear(ctx context.Context, log *zap.SugaredLogger, store kv.Store) error {
	return pnote.NewAdapter(log, store, sys.Configs.Storage.Key).Save(ctx, nil)
}
