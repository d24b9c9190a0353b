package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"replkit/internal/core/domain"
	"replkit/internal/core/domain/dispatch"
	"replkit/internal/core/domain/match"
	"replkit/internal/core/port"
)

var fswalkCmd = &cobra.Command{
	Use:   "fswalk",
	Short: "Filesystem console: cd, ls, mkdir and a multi-line file editor",
	RunE: func(_ *cobra.Command, _ []string) error {
		return runConsole(newFswalkContext())
	},
}

func init() {
	rootCmd.AddCommand(fswalkCmd)
}

// fsState carries the console's working directory across actions.
type fsState struct {
	dir string
}

func (s *fsState) resolve(name string) string {
	if filepath.IsAbs(name) {
		return filepath.Clean(name)
	}

	return filepath.Join(s.dir, name)
}

func (s *fsState) cd(ctx port.CommandContext, vals domain.Values) error {
	target := s.resolve(vals.String("dirname"))

	info, err := os.Stat(target)
	if err != nil || !info.IsDir() {
		ctx.Write("No such dir: " + vals.String("dirname") + "\n")
		return nil
	}

	s.dir = target
	return nil
}

func (s *fsState) ls(ctx port.CommandContext, vals domain.Values) error {
	target := s.dir
	if name := vals.String("dirname"); name != "" {
		target = s.resolve(name)
	}

	info, err := os.Stat(target)
	if err != nil {
		ctx.Write("No such dir: " + vals.String("dirname") + "\n")
		return nil
	}

	if !info.IsDir() {
		ctx.Write(vals.String("dirname") + "\n")
		return nil
	}

	entries, err := os.ReadDir(target)
	if err != nil {
		ctx.Write(err.Error() + "\n")
		return nil
	}

	for _, entry := range entries {
		ctx.Write(entry.Name() + "\n")
	}
	return nil
}

func (s *fsState) mkdir(ctx port.CommandContext, vals domain.Values) error {
	if err := os.Mkdir(s.resolve(vals.String("dirname")), 0755); err != nil {
		ctx.Write(err.Error() + "\n")
	}
	return nil
}

func (s *fsState) newFile(ctx port.CommandContext, vals domain.Values) error {
	name := vals.String("filename")
	target := s.resolve(name)

	if _, err := os.Stat(target); err == nil {
		ctx.Write(name + " already exists!\n")
		return nil
	}

	ctx.Write("< Enter content of new file \"" + name + "\" (2 empty lines to exit editor) >\n")
	ctx.Enter(dispatch.NewMultiLineContext("", dispatch.OverOnTwoEmptyLines(),
		func(mctx port.CommandContext, buffer string) error {
			if err := os.WriteFile(target, []byte(buffer), 0644); err != nil {
				mctx.Write(err.Error() + "\n")
			}
			return nil
		}))
	return nil
}

func newFswalkContext() *dispatch.Context {
	dir, err := filepath.Abs(".")
	if err != nil {
		dir = "."
	}
	s := &fsState{dir: dir}

	reg := dispatch.NewRegistry().
		BindArgs(match.NewArgGrammar("cd",
			[]match.Positional{{Name: "dirname", Required: true}}, nil), s.cd).
		BindRegex(`^ls(\s+(?P<dirname>\S+))?\s*$`, s.ls).
		BindArgs(match.NewArgGrammar("mkdir",
			[]match.Positional{{Name: "dirname", Required: true}}, nil), s.mkdir).
		BindArgs(match.NewArgGrammar("new",
			[]match.Positional{{Name: "filename", Required: true}}, nil), s.newFile)

	return dispatch.NewPrebuiltPrompt("fswalk", reg)
}
