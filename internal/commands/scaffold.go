package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sleuth-io/fmcat/internal/lock"
	"github.com/sleuth-io/fmcat/internal/scaffold"
	"github.com/sleuth-io/fmcat/internal/ui"
)

// NewScaffoldCommand creates the scaffold command
func NewScaffoldCommand() *cobra.Command {
	var flags configFlags
	var networkFolder bool

	cmd := &cobra.Command{
		Use:   "scaffold",
		Short: "Create the folder and Contents.json skeleton of the asset catalog",
		Long: `Create one folder per subject and layer, and one empty image set per
expected feature map, each with the Contents.json an asset catalog expects.

Existing folders are reused and descriptors are rewritten with identical
content. Images already copied into image sets are never touched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScaffold(cmd, &flags, networkFolder)
		},
	}

	addConfigFlags(cmd, &flags)
	addLockFlag(cmd, &flags)
	cmd.Flags().BoolVar(&networkFolder, "network-folder", false, "Also write a Contents.json into the catalog folder itself")

	return cmd
}

func runScaffold(cmd *cobra.Command, flags *configFlags, networkFolder bool) error {
	out := ui.NewOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())
	log := runLogger("scaffold")

	cfg, err := flags.load(cmd)
	if err != nil {
		return err
	}

	l, err := lock.Acquire(cmd.Context(), cfg.CatalogDir, flags.lockTimeout)
	if err != nil {
		return fmt.Errorf("failed to lock %s: %w", cfg.CatalogDir, err)
	}
	defer func() { _ = l.Release() }()

	log.Info("scaffold started", "catalog", cfg.CatalogDir, "subjects", cfg.Subjects, "layers", len(cfg.Layers))

	s := scaffold.New(scaffold.Options{
		CatalogDir:    cfg.CatalogDir,
		Subjects:      cfg.Subjects,
		Layers:        cfg.Layers,
		NetworkFolder: networkFolder,
	}, &scaffoldReporter{out: out}).WithLogger(log)

	if _, err := s.Run(cmd.Context()); err != nil {
		log.Error("scaffold failed", "error", err)
		return err
	}

	out.Newline()
	out.Success(fmt.Sprintf("All %s folders and imagesets created successfully!", strings.Join(cfg.Subjects, ", ")))
	out.Header("Structure:")
	for _, subject := range cfg.Subjects {
		out.Println("  " + subject + "/")
		for _, layer := range cfg.Layers {
			out.Printf("    %s: %d imagesets\n", layer.Name, layer.Count)
		}
	}

	return nil
}

// scaffoldReporter prints scaffold progress
type scaffoldReporter struct {
	out *ui.Output
}

func (r *scaffoldReporter) SubjectCreated(subject string) {
	r.out.Success(fmt.Sprintf("Created %s folder", subject))
}

func (r *scaffoldReporter) LayerCreated(subject, layer string) {
	r.out.SuccessItem(fmt.Sprintf("Created %s/%s folder", subject, layer))
}

func (r *scaffoldReporter) ImageSetsCreated(subject, layer string, count int) {
	r.out.SuccessItem(fmt.Sprintf("   Created %d imagesets for %s/%s", count, subject, layer))
}
