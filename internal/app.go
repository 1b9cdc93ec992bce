package internal

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"cloudtidy/internal/maintain"
	"cloudtidy/internal/models"
	"cloudtidy/internal/providers"
	"cloudtidy/internal/remote"
	"cloudtidy/internal/services"
	"cloudtidy/internal/structures"
)

// App drives one maintenance run as a sequence of hard gates: a failure or
// declined confirmation at any stage ends the run without executing later
// stages.
type App struct {
	conf     *structures.Config
	logger   providers.Logger
	prompter providers.PrompterInterface
	sessions services.SessionServiceInterface
	remote   remote.Remote
	executor *maintain.Executor
	backups  *maintain.BackupWriter
	archiver *maintain.Archiver
}

func NewApp(
	conf *structures.Config,
	logger providers.Logger,
	prompter providers.PrompterInterface,
	sessions services.SessionServiceInterface,
	rem remote.Remote,
	executor *maintain.Executor,
	backups *maintain.BackupWriter,
	archiver *maintain.Archiver,
) *App {
	return &App{
		conf:     conf,
		logger:   logger,
		prompter: prompter,
		sessions: sessions,
		remote:   rem,
		executor: executor,
		backups:  backups,
		archiver: archiver,
	}
}

func (a *App) Close() {
	a.archiver.Close()
	a.logger.Close()
}

func (a *App) Run(ctx context.Context) error {
	start := time.Now()
	a.prompter.Say("%s - remote file maintenance", a.conf.AppName)

	account, password, ok := a.selectAccount()
	if !ok {
		a.prompter.Say("Exiting.")
		return nil
	}

	a.prompter.Say("Logging in to %s...", account)
	if err := a.remote.Login(ctx, account, password); err != nil {
		a.logger.Errorf(providers.TypeApp, "Login failed for %s: %s", account, err)
		return fmt.Errorf("login failed: %w", err)
	}
	a.sessions.Touch(account, password, time.Now())
	a.logger.Infof(providers.TypeApp, "Logged in to account: %s", account)

	query, err := a.prompter.Line("Enter remote folder path")
	if err != nil || query == "" {
		a.prompter.Say("No folder given. Exiting.")
		return nil
	}

	a.prompter.Say("Searching for folder: %s", query)
	listing, err := a.remote.ListNodes(ctx)
	if err != nil {
		a.logger.Errorf(providers.TypeApp, "Error fetching node listing: %s", err)
		return err
	}

	folder, err := maintain.Locate(listing, query, func(n models.Node) bool {
		return a.prompter.Confirm(fmt.Sprintf("Found %q. Is this correct?", n.Name))
	})
	if err != nil {
		a.logger.Errorf(providers.TypeApp, "Folder not found: %s", query)
		a.prompter.Say("Folder not found. Exiting.")
		return err
	}

	a.prompter.Say("Analyzing folder contents...")
	files, err := a.collectFiles(ctx, folder)
	if err != nil {
		return err
	}

	stats := maintain.Analyze(files, a.conf.Maintain.TargetExtension)
	a.showStats(stats)

	if stats.TotalFiles == 0 {
		a.prompter.Say("No files found in folder. Exiting.")
		return nil
	}

	customName, err := a.prompter.Line("Enter custom name for files")
	if err != nil || customName == "" {
		a.prompter.Say("Custom name cannot be empty. Exiting.")
		return nil
	}

	plan := maintain.BuildPlan(files, a.conf.Maintain.TargetExtension, customName, a.conf.Maintain.IndexPadding)

	if a.prompter.Confirm("Perform dry run first? (recommended)") {
		a.prompter.Say("Dry run: no changes will be made.")
		a.executor.DeleteFiles(ctx, plan.Deletions, true)
		a.executor.RenameFiles(ctx, plan.Renames, true)
		a.prompter.Say("Dry run complete. Review the logs in %s.", a.conf.Logger.Dir)

		if !a.prompter.Confirm("Proceed with actual operation?") {
			a.prompter.Say("Operation cancelled.")
			return nil
		}
	}

	if !a.prompter.Confirm("This will modify your remote files. Continue?") {
		a.prompter.Say("Operation cancelled.")
		return nil
	}

	// Re-read the folder right before mutating, like each earlier stage.
	// The listing cache serves all three stages from one snapshot, so the
	// executed plan is the one the user confirmed.
	files, err = a.collectFiles(ctx, folder)
	if err != nil {
		return err
	}
	plan = maintain.BuildPlan(files, a.conf.Maintain.TargetExtension, customName, a.conf.Maintain.IndexPadding)

	deleted := a.executor.DeleteFiles(ctx, plan.Deletions, false)
	renamed := a.executor.RenameFiles(ctx, plan.Renames, false)

	if renamed > 0 {
		artifact := models.BackupArtifact{
			Timestamp:  time.Now(),
			CustomName: customName,
			Files:      plan.Renames,
		}
		if _, err := a.backups.Write(artifact); err != nil {
			a.logger.Errorf(providers.TypeApp, "Error saving backup: %s", err)
		}
	}

	a.archiver.Sweep(time.Now())

	duration := time.Since(start).Seconds()
	a.prompter.Say("Operation complete: deleted %d, renamed %d (%.2fs)", deleted, renamed, duration)
	a.logger.Infof(providers.TypeApp, "Operation complete - Deleted: %d, Renamed: %d, Duration: %.2fs", deleted, renamed, duration)
	return nil
}

// collectFiles takes a fresh read of the listing and walks the folder.
// Every stage that needs folder contents goes through here, so the
// listing cache decides how many backend fetches a run costs.
func (a *App) collectFiles(ctx context.Context, folder models.Node) ([]models.FileRecord, error) {
	listing, err := a.remote.ListNodes(ctx)
	if err != nil {
		a.logger.Errorf(providers.TypeApp, "Error fetching node listing: %s", err)
		return nil, err
	}

	files, err := maintain.CollectFiles(listing, folder.ID)
	if err != nil {
		a.logger.Errorf(providers.TypeApp, "Error walking folder %q: %s", folder.Name, err)
		return nil, err
	}
	return files, nil
}

// selectAccount resolves the account menu to credentials. ok=false means
// the user chose to exit.
func (a *App) selectAccount() (account, password string, ok bool) {
	accounts := a.sessions.Accounts()
	if len(accounts) == 0 {
		a.prompter.Say("No saved accounts found.")
		return a.addNewAccount()
	}

	a.prompter.Say("Saved accounts:")
	for i, acc := range accounts {
		session, _ := a.sessions.Get(acc)
		lastUsed := session.LastUsed
		if lastUsed == "" {
			lastUsed = "Never"
		}
		a.prompter.Say("  %d. %s (Last used: %s)", i+1, acc, lastUsed)
	}
	a.prompter.Say("  %d. Add new account", len(accounts)+1)
	a.prompter.Say("  0. Exit")

	for {
		answer, err := a.prompter.Line("Select option")
		if err != nil || answer == "" {
			return "", "", false
		}

		choice, err := strconv.Atoi(answer)
		if err != nil {
			a.prompter.Say("Please enter a number.")
			continue
		}

		switch {
		case choice == 0:
			return "", "", false
		case choice >= 1 && choice <= len(accounts):
			acc := accounts[choice-1]
			if a.prompter.Confirm(fmt.Sprintf("Use account %q?", acc)) {
				session, _ := a.sessions.Get(acc)
				return acc, session.Password, true
			}
		case choice == len(accounts)+1:
			return a.addNewAccount()
		default:
			a.prompter.Say("Invalid choice.")
		}
	}
}

func (a *App) addNewAccount() (account, password string, ok bool) {
	account, err := a.prompter.Line("Enter account email")
	if err != nil || account == "" {
		return "", "", false
	}
	password, err = a.prompter.Secret("Enter account password")
	if err != nil {
		return "", "", false
	}
	return account, password, true
}

func (a *App) showStats(stats models.InventoryStats) {
	a.prompter.Say("Total files: %d", stats.TotalFiles)
	a.prompter.Say("%s files: %d (will be deleted)", a.conf.Maintain.TargetExtension, stats.TargetFiles)
	a.prompter.Say("Other files: %d (will be renamed)", stats.OtherFiles)

	a.prompter.Say("File types breakdown:")
	for _, row := range stats.SortedTypes() {
		a.prompter.Say("  %s: %d", row.Ext, row.Count)
	}
}
