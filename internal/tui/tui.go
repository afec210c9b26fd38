package tui

import (
	"context"

	"github.com/MKhiriev/go-borrower-search/internal/logger"
	"github.com/MKhiriev/go-borrower-search/internal/service"
	"github.com/MKhiriev/go-borrower-search/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI runs the search forms in a full-screen Bubble Tea program.
type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	onSwitch  SwitchHandler

	logger *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, onSwitch SwitchHandler, logger *logger.Logger) (*TUI, error) {
	if services == nil || len(services.Variants) == 0 {
		return nil, ErrNoSearchVariants
	}

	return &TUI{
		services:  services,
		buildInfo: buildInfo,
		onSwitch:  onSwitch,
		logger:    logger,
	}, nil
}

// NewRoot builds the root model with one form per variant.
func (t *TUI) NewRoot(ctx context.Context) RootModel {
	forms := make([]*SearchFormModel, 0, len(t.services.Variants))
	for _, v := range t.services.Variants {
		forms = append(forms, NewSearchFormModel(ctx, v, t.onSwitch))
	}
	return NewRootModel(forms, t.buildInfo)
}

// Run blocks until the user quits. Requests still in flight are canceled
// through ctx when the program ends.
func (t *TUI) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	finalModel, err := tea.NewProgram(t.NewRoot(ctx), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	if root, ok := finalModel.(RootModel); ok {
		t.logger.Info().Bool("quit_by_user", root.quitByUser).Str("variant", root.Current()).Msg("tui finished")
	}
	return nil
}
