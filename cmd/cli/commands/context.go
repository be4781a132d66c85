package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/jakechorley/seva-rota/internal/config"
	"github.com/jakechorley/seva-rota/pkg/core/services"
	"github.com/jakechorley/seva-rota/pkg/localstore"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg     *config.Config
	Store   *localstore.Store
	Session *services.Session
	Logger  *zap.Logger
	Ctx     context.Context

	// Input is shared by the interactive session and confirmation prompts
	Input    *bufio.Reader
	Prompter services.Prompter

	// Interactive is true inside the interactive session, where saving is explicit
	Interactive bool
}

// autosave persists the in-progress week after a change made by a one-shot command
func (app *AppContext) autosave(out io.Writer) error {
	if app.Interactive || !app.Session.IsDirty() {
		return nil
	}
	if err := app.Session.Save(app.Ctx); err != nil {
		return err
	}
	fmt.Fprintf(out, "✓ Saved week %s\n", app.Session.WeekID())
	return nil
}
