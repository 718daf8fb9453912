// Command simdatac compiles .simdata schema files into Go.
//
// Usage:
//
//	simdatac gen [path]
//	simdatac describe [path] --format=json|yaml
//
// path is a .simdata file or a directory holding exactly one. It defaults to the current
// directory. Settings are read from simdatac.toml or simdatac.yaml in the current
// directory, or from the file named by --config.
package main

import (
	"flag"
	"io/fs"

	gfs "github.com/gopherfs/fs"
	osfs "github.com/gopherfs/fs/io/os"
	"github.com/gostdlib/base/context"
	"github.com/spf13/cobra"

	log "github.com/golang/glog"

	// Registers the golang renderer.
	_ "github.com/bearlytools/simdata/internal/render/golang"
)

// compilerFS is the filesystem schemas and config are read from and output is written to.
type compilerFS interface {
	fs.ReadFileFS
	gfs.Writer
}

var (
	configPath string
	verbose    bool

	// fsys and cfg are set in PersistentPreRunE.
	fsys compilerFS
	cfg  Config
)

var rootCmd = &cobra.Command{
	Use:           "simdatac <command>",
	Short:         "Compiles .simdata schema files",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if fsys == nil {
			ofs, err := osfs.New()
			if err != nil {
				return err
			}
			fsys = ofs
		}
		c, err := loadConfig(fsys, ".", configPath)
		if err != nil {
			return err
		}
		if verbose {
			c.Verbose = true
		}
		if c.Verbose {
			flag.Set("v", "1")
			flag.Set("logtostderr", "true")
		}
		cfg = c
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default simdatac.toml or simdatac.yaml)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "log each step")
	// glog's flags, such as -v and -logtostderr.
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)
}

func main() {
	defer log.Flush()

	ctx := context.Background()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Exitf("simdatac: %v", err)
	}
}

func pathArg(args []string) string {
	if len(args) == 0 {
		return "."
	}
	return args[0]
}
