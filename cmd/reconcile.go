package cmd

import (
	"context"
	"fmt"
	"strings"

	"inventory-manager/core/config"
	"inventory-manager/core/database"
	"inventory-manager/core/logger"
	"inventory-manager/core/provider"
	"inventory-manager/core/reconcile"
	"inventory-manager/core/storage"
	"inventory-manager/core/store"
	"inventory-manager/feature/inventory"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the reconcile commands
	reconcileRegion       string
	reconcileEndpointLink string
	reconcileAccount      string
	reconcileTenantLinks  []string
	reconcilePoolLink     string
	reconcileOwnerAuth    string
	reconcilePolicy       string
	reconcileAction       string
	reconcileMock         bool
)

// reconcileCmd is the parent command for all reconcile operations.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile [kind|all]",
	Short: "Run one reconciliation cycle from the command line",
	Long: `Run one reconciliation cycle for a resource kind, or for every
registered kind with 'all'.

Examples:
  # Reconcile instances in one region
  reconcile instances --region us-east-1 --endpoint-link /endpoints/prod

  # Sweep every kind
  reconcile all --region us-east-1 --endpoint-link /endpoints/prod

  # Dry-run wiring check without touching the provider or the database
  reconcile disks --region us-east-1 --mock

  # Retire gone records instead of applying the kind's default policy
  reconcile instances --region us-east-1 --policy RETIRE`,
	Args: cobra.ExactArgs(1),
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().StringVar(&reconcileRegion, "region", "", "Provider region to enumerate (required)")
	reconcileCmd.Flags().StringVar(&reconcileEndpointLink, "endpoint-link", "", "Owning endpoint document link")
	reconcileCmd.Flags().StringVar(&reconcileAccount, "account", "", "Provider account identifier")
	reconcileCmd.Flags().StringSliceVar(&reconcileTenantLinks, "tenant-link", nil, "Tenant links stamped on created records")
	reconcileCmd.Flags().StringVar(&reconcilePoolLink, "resource-pool-link", "", "Resource pool link stamped on created records")
	reconcileCmd.Flags().StringVar(&reconcileOwnerAuth, "owner-auth", "", "Owner-scoped provider credential (defaults to the configured key)")
	reconcileCmd.Flags().StringVar(&reconcilePolicy, "policy", "", "Removal policy override (DELETE, RETIRE, UNLINK_ENDPOINT)")
	reconcileCmd.Flags().StringVar(&reconcileAction, "action", "START", "Cycle action (START, REFRESH, STOP)")
	reconcileCmd.Flags().BoolVar(&reconcileMock, "mock", false, "Short-circuit to success without remote or database calls")
	_ = reconcileCmd.MarkFlagRequired("region")

	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	kind := args[0]

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	inventoryStore := store.NewSQLStore(db)
	if err := inventoryStore.Migrate(); err != nil {
		return fmt.Errorf("failed to migrate inventory schema: %w", err)
	}

	objectStorage, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to connect to storage: %w", err)
	}

	pool := reconcile.NewClientPool(
		inventory.NewListerFactory(cfg.Provider, objectStorage, l))
	svc := inventory.NewService(inventory.Adapters(), inventoryStore, pool, l)

	req := reconcile.Request{
		Scope: provider.Scope{
			EndpointLink:     reconcileEndpointLink,
			Region:           reconcileRegion,
			Account:          reconcileAccount,
			TenantLinks:      reconcileTenantLinks,
			ResourcePoolLink: reconcilePoolLink,
			OwnerAuth:        reconcileOwnerAuth,
		},
		Action:        reconcile.Action(strings.ToUpper(reconcileAction)),
		RemovalPolicy: reconcile.RemovalPolicy(strings.ToUpper(reconcilePolicy)),
		IsMock:        reconcileMock,
	}

	var summary reconcile.Summary
	if kind == "all" {
		summary, err = svc.RunAll(ctx, req)
	} else {
		summary, err = svc.Run(ctx, kind, req)
	}
	if err != nil {
		return err
	}

	l.Info("Reconciliation finished",
		zap.String("kind", kind),
		zap.Int("pages", summary.Pages),
		zap.Int("created", summary.Created),
		zap.Int("updated", summary.Updated),
		zap.Int("reaped", summary.Reaped),
	)
	return nil
}
