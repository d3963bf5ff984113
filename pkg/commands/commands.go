package commands

import (
	"os"

	"github.com/spf13/cobra"

	"tableflip.dev/outliner/pkg/app"
	"tableflip.dev/outliner/pkg/commands/options"
	"tableflip.dev/outliner/pkg/host"
	"tableflip.dev/outliner/pkg/printers"
	"tableflip.dev/outliner/pkg/store"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "outliner",
		Short: options.Wrap80("Browse and restructure the headline tree of text documents on the command line."),
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			printers.DisableColorUnlessTerminal()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddOutputArg(cmd, output)
	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addTree(topLevel)
	addInsert(topLevel)
	addPaste(topLevel)
	addCut(topLevel)
	addCopy(topLevel)
	addMoves(topLevel)
	addMark(topLevel)
	addUnmark(topLevel)
	addSelect(topLevel)
	addSort(topLevel)
	addFold(topLevel)
	addFind(topLevel)
	addGrep(topLevel)
	addUNL(topLevel)
	addReport(topLevel)
	addVerify(topLevel)
	addWatch(topLevel)
	addKey(topLevel)
	addInfo(topLevel)
	addMCP(topLevel)
	addCompletions(topLevel)
	addVersion(topLevel)
}

// service loads the configuration and returns a service logging to stderr.
func service(do *options.DocumentOptions) (*app.Service, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	svc := &app.Service{
		Config: cfg,
		Sink:   host.NewLogSink(os.Stderr),
	}
	if do != nil {
		svc.Register = do.Register
	}
	return svc, nil
}
