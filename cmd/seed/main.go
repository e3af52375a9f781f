// Command seed prepares the content store: it creates an empty document,
// imports an existing db.json, or restores a snapshot from object storage.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/faqdesk/faqdesk/backend/go-services/internal/config"
	"github.com/faqdesk/faqdesk/backend/go-services/internal/content"
	"github.com/faqdesk/faqdesk/backend/go-services/internal/content/repository"
	"github.com/faqdesk/faqdesk/backend/go-services/internal/database"
	"github.com/faqdesk/faqdesk/backend/go-services/internal/jsonfile"
	"github.com/faqdesk/faqdesk/backend/go-services/internal/storage"
	"github.com/faqdesk/faqdesk/backend/go-services/pkg/logger"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
)

// restorer loads a snapshot by key; *storage.Backups satisfies it.
type restorer interface {
	Restore(ctx context.Context, key string) (*content.Document, error)
}

type options struct {
	from     string
	snapshot string
	force    bool
}

var errAlreadySeeded = errors.New("content store already initialized (use --force to overwrite)")

func main() {
	logger.Init(os.Getenv("LOG_LEVEL"))
	if err := rootCmd().ExecuteContext(context.Background()); err != nil {
		logger.Errorf("seed: %v", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:           "seed",
		Short:         "Initialize, import or restore the FAQ content store",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.from != "" && opts.snapshot != "" {
				return errors.New("--from and --from-snapshot are mutually exclusive")
			}
			return run(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringVar(&opts.from, "from", "", "import a db.json file into the configured store")
	cmd.Flags().StringVar(&opts.snapshot, "from-snapshot", "", "restore the snapshot stored under this object key")
	cmd.Flags().BoolVar(&opts.force, "force", false, "overwrite an already initialized store")
	return cmd
}

func run(ctx context.Context, opts options) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	var db *mongo.Database
	if cfg.Store.Backend == config.BackendMongo {
		client, err := database.ConnectMongoWithRetry(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout, 3)
		if err != nil {
			return err
		}
		defer func() { _ = client.Disconnect(context.Background()) }()
		db = client.Database(cfg.MongoDB.Database)
	}
	store, err := repository.Open(cfg.Store.Backend, cfg.Store.ContentFile, db)
	if err != nil {
		return err
	}

	var snaps restorer
	if opts.snapshot != "" {
		if !cfg.MinIO.Enabled() {
			return errors.New("--from-snapshot requires MINIO_ENDPOINT, MINIO_ACCESS_KEY and MINIO_SECRET_KEY")
		}
		objects, err := storage.NewMinIOStorage(ctx, &cfg.MinIO)
		if err != nil {
			return err
		}
		snaps = storage.NewBackups(objects)
	}

	msg, err := seed(ctx, store, snaps, opts)
	if err != nil {
		return err
	}
	logger.Infof("%s (%s)", msg, cfg.Store.Backend)
	return nil
}

// seed applies opts to store and returns a summary of what it did.
func seed(ctx context.Context, store repository.Store, snaps restorer, opts options) (string, error) {
	if opts.from == "" && opts.snapshot == "" {
		created, err := repository.EnsureInitialized(ctx, store)
		if err != nil {
			return "", err
		}
		if created {
			return "created empty content document", nil
		}
		return "content document already present", nil
	}

	if !opts.force {
		_, err := store.Load(ctx)
		if err == nil {
			return "", errAlreadySeeded
		}
		if !errors.Is(err, repository.ErrNotInitialized) {
			return "", err
		}
	}

	var doc *content.Document
	source := opts.from
	if opts.from != "" {
		doc = &content.Document{}
		if err := jsonfile.Read(opts.from, doc); err != nil {
			return "", fmt.Errorf("read %s: %w", opts.from, err)
		}
	} else {
		source = opts.snapshot
		var err error
		if doc, err = snaps.Restore(ctx, opts.snapshot); err != nil {
			return "", err
		}
	}
	normalize(doc)

	if err := store.Save(ctx, doc); err != nil {
		return "", err
	}
	return fmt.Sprintf("imported %d categories, %d FAQs from %s", len(doc.Categories), len(doc.FAQs), source), nil
}

// normalize replaces missing collections with empty ones so that later
// reads serialize them as [] rather than null.
func normalize(doc *content.Document) {
	if doc.Categories == nil {
		doc.Categories = []content.Category{}
	}
	if doc.FAQs == nil {
		doc.FAQs = []content.FAQ{}
	}
	if doc.FeaturedCards == nil {
		doc.FeaturedCards = []content.FeaturedCard{}
	}
	if doc.FooterLinks == nil {
		doc.FooterLinks = []content.FooterSection{}
	}
}
