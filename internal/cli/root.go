package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kalbasit/shrinkcat"
)

// Flags holds the parsed command-line surface for a single invocation.
type Flags struct {
	File      string
	ChunkSize string
	DryRun    bool

	TestCreateZeroFileSize   uint64
	TestCreateRandomFileSize uint64
	TestCreateASCIIFileSize  uint64
	TestTruncateFileSize     uint64

	PlanChunks bool
}

// NewRootCmd builds the shrinkcat command tree.
func NewRootCmd() *cobra.Command {
	var flags Flags

	cmd := &cobra.Command{
		Use:   "shrinkcat",
		Short: "Shrink a file in place while streaming its original contents to a sink",
		Long: `shrinkcat reads a file end-to-end while shrinking it in place, one chunk
at a time, so the operator never needs twice the disk space to copy the
file elsewhere first.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), NewLogger(), flags)
		},
	}

	cmd.Flags().StringVar(&flags.File, "file", "", "target file (required unless --plan-chunks is given)")
	cmd.Flags().StringVar(&flags.ChunkSize, "chunk-size", "", "human-readable chunk size, e.g. 64KiB (default: tiered heuristic on file size)")
	cmd.Flags().BoolVar(&flags.DryRun, "dry-run", false, "plan and log without touching disk")
	cmd.Flags().Uint64Var(&flags.TestCreateZeroFileSize, "test-create-zero-file-size", 0, "fabricate a zero-filled file of this size at --file")
	cmd.Flags().Uint64Var(&flags.TestCreateRandomFileSize, "test-create-random-file-size", 0, "fabricate a random-bytes file of this size at --file")
	cmd.Flags().Uint64Var(&flags.TestCreateASCIIFileSize, "test-create-ascii-file-size", 0, "fabricate a printable-ASCII file of this size at --file")
	cmd.Flags().Uint64Var(&flags.TestTruncateFileSize, "test-truncate-file-size", 0, "truncate --file to this size and exit")
	cmd.Flags().BoolVar(&flags.PlanChunks, "plan-chunks", false, "plan and print the fixed C=1,N=11 example, touching no file")

	return cmd
}

func run(out io.Writer, logger *logrus.Logger, flags Flags) error {
	switch {
	case flags.PlanChunks:
		return runPlanChunks(out)
	case flags.TestCreateZeroFileSize > 0:
		return CreateZeroFile(flags.File, flags.TestCreateZeroFileSize)
	case flags.TestCreateRandomFileSize > 0:
		return CreateRandomFile(flags.File, flags.TestCreateRandomFileSize)
	case flags.TestCreateASCIIFileSize > 0:
		return CreateASCIIFile(flags.File, flags.TestCreateASCIIFileSize)
	case flags.TestTruncateFileSize > 0:
		return shrinkcat.TruncateToLength(flags.File, flags.TestTruncateFileSize)
	}

	if flags.File == "" {
		return fmt.Errorf("--file is required")
	}

	fi, err := os.Stat(flags.File)
	if err != nil {
		return fmt.Errorf("stat %s: %w", flags.File, err)
	}
	fileSize := uint64(fi.Size())

	chunkSize := DefaultChunkSize(fileSize)
	if flags.ChunkSize != "" {
		parsed, err := humanize.ParseBytes(flags.ChunkSize)
		if err != nil {
			return fmt.Errorf("parsing --chunk-size %q: %w", flags.ChunkSize, err)
		}
		chunkSize = parsed
	}

	plan, err := shrinkcat.Plan(chunkSize, fileSize)
	if err != nil {
		return err
	}

	ops, err := shrinkcat.Realize(plan)
	if err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{
		"file":       flags.File,
		"file_size":  fileSize,
		"chunk_size": chunkSize,
		"operations": len(ops),
	}).Info("committing plan")

	exec, err := shrinkcat.NewExecutor(out, shrinkcat.WithLogger(logger))
	if err != nil {
		return err
	}

	return exec.Commit(flags.File, ops, flags.DryRun)
}

func runPlanChunks(out io.Writer) error {
	plan, err := shrinkcat.Plan(1, 11)
	if err != nil {
		return err
	}

	ops, err := shrinkcat.Realize(plan)
	if err != nil {
		return err
	}

	for _, op := range ops {
		src := "-"
		if op.SrcChunk != nil {
			src = op.SrcChunk.String()
		}
		fmt.Fprintf(out, "%d: data=%s src=%s truncate_to=%d middle=%t\n",
			op.ChunkNo, op.DataChunk, src, op.TruncateTo, op.IsMiddle)
	}

	return nil
}
