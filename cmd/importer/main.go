package main

import (
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
	"go.uber.org/zap"

	"github.com/biblestudio/bible-studio-api/internal/database"
	"github.com/biblestudio/bible-studio-api/internal/loader"
	"github.com/biblestudio/bible-studio-api/internal/logger"
)

var dbPath string

func main() {
	// Initialize logger (always debug mode for importer)
	logger.Init(true)
	defer logger.Sync()

	rootCmd := &cobra.Command{
		Use:   "importer",
		Short: "Bible Studio data importer",
		Long:  "Import Bible translations and commentaries into the SQLite corpus and manage installed versions",
	}
	rootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "bible.db", "Path to the SQLite database")

	rootCmd.AddCommand(
		importCmd(),
		commentariesCmd(),
		listCmd(),
		statsCmd(),
		renameCmd(),
		deleteCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		logger.Fatal("Command execution failed", zap.Error(err))
	}
}

// openRepo opens the database, runs migrations and wraps it in a
// repository. The caller must Close the returned DB.
func openRepo() (*database.DB, *database.Repository, error) {
	db, err := database.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return db, database.NewRepository(db), nil
}

func importCmd() *cobra.Command {
	var versionID string

	cmd := &cobra.Command{
		Use:   "import <translation.json>",
		Short: "Import a translation file",
		Long:  "Import a translation JSON file in a single transaction. Any malformed verse rejects the whole file.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, verses, err := loader.LoadVersion(args[0], versionID)
			if err != nil {
				return err
			}
			logger.Info("Loaded translation file",
				zap.String("version", id),
				zap.Int("verses", len(verses)))

			db, repo, err := openRepo()
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			progress := mpb.New(
				mpb.WithWidth(60),
				mpb.WithRefreshRate(100*time.Millisecond),
			)
			bar := progress.AddBar(int64(len(verses)),
				mpb.PrependDecorators(
					decor.Name("Importing: ", decor.WC{W: 11, C: decor.DindentRight}),
					decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
				),
				mpb.AppendDecorators(decor.Percentage()),
			)

			// The insert itself is one atomic transaction; the bar
			// tracks the normalization pass over the records.
			for i := range verses {
				if verses[i].BookCode == 0 {
					logger.Warn("Verse has no book code",
						zap.String("book", verses[i].BookName),
						zap.Int("chapter", verses[i].Chapter),
						zap.Int("verse", verses[i].Number))
				}
				bar.Increment()
			}
			progress.Wait()

			if err := repo.AddVersion(id, verses); err != nil {
				return fmt.Errorf("import failed, nothing was written: %w", err)
			}
			logger.Info("Import complete",
				zap.String("version", id),
				zap.Int("verses", len(verses)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&versionID, "version", "v", "", "Version id (overrides the id in the file)")
	return cmd
}

func commentariesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "commentaries <commentary.json>",
		Short: "Import a commentary file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := loader.LoadCommentaries(args[0])
			if err != nil {
				return err
			}

			db, repo, err := openRepo()
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			if err := repo.AddCommentaries(entries); err != nil {
				return fmt.Errorf("commentary import failed: %w", err)
			}
			logger.Info("Commentary import complete", zap.Int("entries", len(entries)))
			return nil
		},
	}
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List installed translations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, repo, err := openRepo()
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			versions, err := repo.ListVersions()
			if err != nil {
				return fmt.Errorf("failed to list versions: %w", err)
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Version", "Display Name", "Verses", "Sample")
			for _, v := range versions {
				name, err := repo.GetDisplayName(v.ID)
				if err != nil {
					return err
				}
				sample := v.SampleText
				if len([]rune(sample)) > 30 {
					sample = string([]rune(sample)[:30]) + "…"
				}
				table.Append(v.ID, name, fmt.Sprintf("%d", v.VerseCount), sample)
			}
			return table.Render()
		},
	}
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <version-id>",
		Short: "Show per-book statistics for a translation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, repo, err := openRepo()
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			stats, err := repo.VersionStats(args[0])
			if err != nil {
				return fmt.Errorf("failed to load stats: %w", err)
			}
			if len(stats) == 0 {
				return fmt.Errorf("version %q not found", args[0])
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Book", "Verses", "Chapters")
			for _, s := range stats {
				table.Append(s.BookName,
					fmt.Sprintf("%d", s.VerseCount),
					fmt.Sprintf("%d-%d", s.MinChapter, s.MaxChapter))
			}
			return table.Render()
		},
	}
}

func renameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <old-id> <new-id>",
		Short: "Rename a translation",
		Long:  "Rename a translation's version id. Renaming onto an existing id merges the two translations; check 'list' first.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, repo, err := openRepo()
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			renamed, err := repo.RenameVersion(args[0], args[1])
			if err != nil {
				return fmt.Errorf("rename failed: %w", err)
			}
			if !renamed {
				return fmt.Errorf("version %q not found", args[0])
			}
			logger.Info("Version renamed",
				zap.String("from", args[0]),
				zap.String("to", args[1]))
			return nil
		},
	}
}

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <version-id>",
		Short: "Delete a translation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, repo, err := openRepo()
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			deleted, err := repo.DeleteVersion(args[0])
			if err != nil {
				return fmt.Errorf("delete failed: %w", err)
			}
			if !deleted {
				return fmt.Errorf("version %q not found", args[0])
			}
			logger.Info("Version deleted", zap.String("version", args[0]))
			return nil
		},
	}
}
