package cmd

import (
	"bufio"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/dendrascience/dirbench/htree"
	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"
)

var errQuit = errors.New("quit")

// NewShellCmd starts an interactive session against one H-tree directory.
func NewShellCmd() *cobra.Command {
	var (
		hf      htreeFlags
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Interactive H-tree directory session",
		Long: `Start a read-eval-print loop over a single in-memory H-tree directory.

Arguments are split with shell quoting rules, so names with spaces can be
written as "my file.txt". Type 'help' for the command list or 'exit' to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(verbose)
			if err != nil {
				return err
			}
			defer log.Sync()

			d, err := hf.newDirectory(log)
			if err != nil {
				return err
			}
			defer d.Close()

			fmt.Fprintf(cmd.OutOrStdout(), "H-tree directory (%s). Type 'help' for commands or 'exit' to quit.\n", d.Placement())
			return newShell(d, cmd.OutOrStdout()).run(cmd.InOrStdin(), true)
		},
	}

	hf.register(cmd)
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	return cmd
}

type shell struct {
	dir    *htree.Directory
	out    io.Writer
	nextID uint32
}

func newShell(d *htree.Directory, out io.Writer) *shell {
	return &shell{dir: d, out: out, nextID: 1}
}

// run reads commands from in until EOF or exit.
func (s *shell) run(in io.Reader, prompt bool) error {
	sc := bufio.NewScanner(in)
	for {
		if prompt {
			fmt.Fprint(s.out, "> ")
		}
		if !sc.Scan() {
			return sc.Err()
		}
		err := s.exec(sc.Text())
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintln(s.out, "error:", err)
		}
	}
}

// exec runs one command line.
func (s *shell) exec(line string) error {
	args, err := shellquote.Split(line)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	if len(args) == 0 {
		return nil
	}

	switch cmd, args := strings.ToLower(args[0]), args[1:]; cmd {
	case "insert", "add":
		return s.insert(args)
	case "find", "get":
		if len(args) != 1 {
			return errors.New("usage: find NAME")
		}
		if rec, ok := s.dir.Find(args[0]); ok {
			fmt.Fprintln(s.out, rec)
		} else {
			fmt.Fprintf(s.out, "not found: %s\n", args[0])
		}
	case "count":
		if len(args) != 1 {
			return errors.New("usage: count NAME")
		}
		fmt.Fprintln(s.out, s.dir.Count(args[0]))
	case "ls", "list":
		for rec := range s.dir.Records() {
			fmt.Fprintln(s.out, rec)
		}
	case "stats":
		st := s.dir.Stats()
		fmt.Fprintf(s.out, "records=%d entry_blocks=%d index_blocks=%d bytes=%d fill=%.1f%%\n",
			st.Records, st.EntryBlocks, st.IndexBlocks, st.BlockBytes, st.FillRatio*100)
	case "validate":
		if err := s.dir.Validate(); err != nil {
			return err
		}
		fmt.Fprintln(s.out, "ok")
	case "dump":
		return s.dump(args)
	case "help":
		s.help()
	case "exit", "quit":
		return errQuit
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

func (s *shell) insert(args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return errors.New("usage: insert NAME [ID]")
	}
	id := s.nextID
	if len(args) == 2 {
		n, err := strconv.ParseUint(args[1], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid id %q", args[1])
		}
		id = uint32(n)
	}
	if err := s.dir.Insert(args[0], id); err != nil {
		return err
	}
	if id >= s.nextID && id < math.MaxUint32 {
		s.nextID = id + 1
	}
	fmt.Fprintf(s.out, "inserted %s (id: %d)\n", args[0], id)
	return nil
}

// dump prints the header and used records of an entry block.
func (s *shell) dump(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: dump BLOCK")
	}
	i, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid block %q", args[0])
	}
	b, ok := s.dir.EntryBlock(i)
	if !ok {
		return fmt.Errorf("no entry block %d (have %d)", i, s.dir.EntryBlocks())
	}
	h := b.Header()
	fmt.Fprintf(s.out, "block %d: type=%s entries=%d free=%d\n", i, h.Type, h.EntryCount, h.FreeSpace)
	used := htree.HeaderSize + b.Len()*b.RecordSize()
	fmt.Fprint(s.out, hex.Dump(b.Bytes()[:used]))
	return nil
}

func (s *shell) help() {
	fmt.Fprint(s.out, `Commands:
  insert NAME [ID]  add a regular file record
  find NAME         show the first record named NAME
  count NAME        number of records named NAME
  ls                list every record in block order
  stats             block and record counts
  validate          check block and routing invariants
  dump BLOCK        hex dump of an entry block
  help              this message
  exit              leave the shell
`)
}
