package datapacks

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/arthur-debert/datapacks/internal/version"
	"github.com/arthur-debert/datapacks/pkg/errors"
	"github.com/arthur-debert/datapacks/pkg/output"
	"github.com/arthur-debert/datapacks/pkg/packages"
	"github.com/arthur-debert/datapacks/pkg/savegame"
	"github.com/arthur-debert/datapacks/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// categoryNames are offered for shell completion of category arguments
var categoryNames = func() []string {
	var names []string
	for _, c := range types.Categories() {
		names = append(names, c.String())
	}
	return names
}()

func completeCategory(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) == 0 {
		return categoryNames, cobra.ShellCompDirectiveNoFileComp
	}
	return nil, cobra.ShellCompDirectiveDefault
}

func newListCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := opts.newResolver()
			if err != nil {
				return err
			}
			out, err := opts.renderer(cmd)
			if err != nil {
				return err
			}

			result := &output.PackageList{
				Active:   r.ActivePackage(),
				Packages: []packages.Package{},
			}
			for _, name := range r.KnownPackageNames() {
				if p, ok := r.Package(name); ok {
					result.Packages = append(result.Packages, p)
				}
			}

			log.Info().Int("count", len(result.Packages)).Msg("Listing packages")
			return out.RenderResult(result)
		},
	}
}

func newSearchPathCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "search-path",
		Short:   MsgSearchPathShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := opts.newResolver()
			if err != nil {
				return err
			}
			out, err := opts.renderer(cmd)
			if err != nil {
				return err
			}
			return out.RenderResult(&output.SearchPath{
				Active:  r.ActivePackage(),
				Entries: r.Entries(),
			})
		},
	}
}

func newResolveCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:               "resolve <category> <name>",
		Short:             MsgResolveShort,
		Long:              MsgResolveLong,
		Example:           MsgResolveExample,
		GroupID:           "core",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: completeCategory,
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := types.ParseCategory(args[0])
			if err != nil {
				return err
			}
			r, err := opts.newResolver()
			if err != nil {
				return err
			}
			out, err := opts.renderer(cmd)
			if err != nil {
				return err
			}

			name := args[1]
			var path string
			var found bool
			if category == types.CategoryLevel {
				path, found = r.LevelPath(name)
			} else {
				path, found = r.ResolveRead(category, name)
			}

			result := &output.Resolution{Category: category.String(), Name: name, Path: path, Found: found}
			if err := out.RenderResult(result); err != nil {
				return err
			}
			if !found {
				return errors.Newf(errors.ErrNotFound, MsgErrNotFound, category, name)
			}
			return nil
		},
	}
}

func newWritePathCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:               "write-path <category> <name>",
		Short:             MsgWritePathShort,
		GroupID:           "core",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: completeCategory,
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := types.ParseCategory(args[0])
			if err != nil {
				return err
			}
			r, err := opts.newResolver()
			if err != nil {
				return err
			}
			out, err := opts.renderer(cmd)
			if err != nil {
				return err
			}

			name := args[1]
			var path string
			if category == types.CategoryLevel {
				path, err = r.LevelWritePath(name)
			} else {
				path, err = r.ResolveWrite(category, name)
			}
			if err != nil {
				return err
			}
			return out.RenderResult(&output.Resolution{Category: category.String(), Name: name, Path: path, Found: true})
		},
	}
}

func newRelativizeCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:               "relativize <category> <path>",
		Short:             MsgRelativeShort,
		Long:              MsgRelativizeLong,
		GroupID:           "core",
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: completeCategory,
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := types.ParseCategory(args[0])
			if err != nil {
				return err
			}
			if !filepath.IsAbs(args[1]) {
				return errors.Newf(errors.ErrInvalidInput, MsgErrNotAbsolute, args[1])
			}
			r, err := opts.newResolver()
			if err != nil {
				return err
			}
			out, err := opts.renderer(cmd)
			if err != nil {
				return err
			}

			rel, err := r.MustRelativize(category, args[1])
			if err != nil {
				return err
			}
			return out.RenderResult(&output.Resolution{Category: category.String(), Name: rel, Path: args[1], Found: true})
		},
	}
}

func newSavegameCmd(opts *globalOptions) *cobra.Command {
	var create bool

	cmd := &cobra.Command{
		Use:     "savegame <slot>",
		Short:   MsgSavegameShort,
		Long:    MsgSavegameLong,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			slot, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return errors.Wrapf(err, errors.ErrInvalidInput, MsgErrInvalidSlot, args[0])
			}
			r, err := opts.newResolver()
			if err != nil {
				return err
			}
			out, err := opts.renderer(cmd)
			if err != nil {
				return err
			}

			slots := savegame.New(r.FS(), r)
			if create {
				if err := slots.EnsureDir(); err != nil {
					return fmt.Errorf(MsgErrSavegameDir, err)
				}
			}

			n := uint(slot)
			found, _ := slots.Find(n)
			return out.RenderResult(&output.Savegame{
				Slot:   n,
				Path:   slots.Path(n),
				Found:  found,
				Legacy: slots.LegacyPaths(n),
			})
		},
	}

	cmd.Flags().BoolVar(&create, "create", false, MsgFlagCreate)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
			return err
		},
	}
}

func newManCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:     "man",
		Short:   MsgManShort,
		GroupID: "misc",
		Hidden:  true,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf(MsgErrCreateManDir, err)
			}
			header := &doc.GenManHeader{
				Title:   "DATAPACKS",
				Section: "1",
				Source:  "datapacks " + version.Version,
				Manual:  "datapacks manual",
			}
			if err := doc.GenManTree(cmd.Root(), header, dir); err != nil {
				return fmt.Errorf(MsgErrGenerateMan, err)
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgManWritten+"\n", dir)
			return err
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "man", MsgFlagManDir)
	return cmd
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "misc",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(w)
			case "zsh":
				return cmd.Root().GenZshCompletion(w)
			case "fish":
				return cmd.Root().GenFishCompletion(w, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(w)
			}
		},
	}
}
