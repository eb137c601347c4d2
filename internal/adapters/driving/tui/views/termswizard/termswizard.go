// Package termswizard provides the terms-of-service wizard view for the TUI.
package termswizard

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lawkit-dev/lawkit-cli/internal/adapters/driving/tui/components/checklist"
	"github.com/lawkit-dev/lawkit-cli/internal/adapters/driving/tui/messages"
	"github.com/lawkit-dev/lawkit-cli/internal/adapters/driving/tui/styles"
	"github.com/lawkit-dev/lawkit-cli/internal/catalog"
	"github.com/lawkit-dev/lawkit-cli/internal/core/domain"
	"github.com/lawkit-dev/lawkit-cli/internal/core/ports/driving"
)

// WizardStep tracks the current step in the wizard.
type WizardStep int

const (
	StepServiceInfo WizardStep = iota
	StepSelectFeatures
	StepPreview
	StepExport
	StepComplete
)

// Key constants.
const (
	keyEnter = "enter"
	keyDown  = "down"
)

// Service info field order.
var infoFields = []struct {
	key         string
	label       string
	placeholder string
}{
	{"serviceName", "서비스 이름", "예: 멋진앱"},
	{"companyName", "회사/단체 이름", "예: 주식회사 멋진"},
	{"serviceType", "서비스 유형", "saas, commerce, community, app, content, platform"},
	{"representative", "대표자 (선택)", "홍길동"},
	{"companyAddress", "주소 (선택)", "서울특별시 ..."},
	{"businessRegistration", "사업자등록번호 (선택)", "000-00-00000"},
	{"contactEmail", "연락처 이메일", "contact@example.com"},
	{"contactPhone", "연락처 전화 (선택)", "02-0000-0000"},
}

// exportFormats lists the export choices in display order.
var exportFormats = []struct {
	format driving.ExportFormat
	label  string
}{
	{driving.FormatText, "텍스트 파일 (.txt)"},
	{driving.FormatHTML, "HTML 파일 (.html)"},
	{driving.FormatPDF, "PDF 파일 (.pdf)"},
	{driving.FormatClipboard, "클립보드 복사"},
}

// View is the terms-of-service wizard view.
type View struct {
	styles        *styles.Styles
	termsService  driving.TermsService
	exportService driving.ExportService

	step WizardStep

	infoInputs []textinput.Model
	focusIndex int

	features *checklist.Checklist

	document *domain.GeneratedTerms
	scroll   int

	formatIndex int
	exportPath  string

	err    error
	width  int
	height int
	ready  bool
}

// NewView creates a new terms wizard view.
func NewView(s *styles.Styles, termsService driving.TermsService, exportService driving.ExportService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:        s,
		termsService:  termsService,
		exportService: exportService,
		step:          StepServiceInfo,
		features:      checklist.New(s),
	}
}

// Init initialises the view from the persisted wizard state.
func (v *View) Init() tea.Cmd {
	v.initInfoInputs()
	v.loadFeatures()
	if len(v.infoInputs) > 0 {
		return v.infoInputs[0].Focus()
	}
	return nil
}

// Reset restarts the wizard at the first step, keeping saved state.
func (v *View) Reset() {
	v.step = StepServiceInfo
	v.focusIndex = 0
	v.scroll = 0
	v.formatIndex = 0
	v.exportPath = ""
	v.err = nil
}

// initInfoInputs seeds the service info inputs from the saved state.
func (v *View) initInfoInputs() {
	var info domain.TermsServiceInfo
	if v.termsService != nil {
		info = v.termsService.State().ServiceInfo
	}
	values := map[string]string{
		"serviceName":          info.ServiceName,
		"companyName":          info.CompanyName,
		"serviceType":          string(info.ServiceType),
		"representative":       info.Representative,
		"companyAddress":       info.CompanyAddress,
		"businessRegistration": info.BusinessRegistration,
		"contactEmail":         info.ContactEmail,
		"contactPhone":         info.ContactPhone,
	}

	v.infoInputs = make([]textinput.Model, len(infoFields))
	for i, f := range infoFields {
		ti := textinput.New()
		ti.Placeholder = f.placeholder
		ti.CharLimit = 256
		ti.SetValue(values[f.key])
		v.infoInputs[i] = ti
	}
	v.focusIndex = 0
}

// loadFeatures fills the checklist from the catalog and saved selection.
func (v *View) loadFeatures() {
	var state *domain.TermsState
	if v.termsService != nil {
		state = v.termsService.State()
	}

	features := catalog.FeaturesByCategory(catalog.CategoryBasic)
	features = append(features, catalog.FeaturesByCategory(catalog.CategoryAdvanced)...)

	entries := make([]checklist.Entry, 0, len(features))
	for _, f := range features {
		checked := state != nil && state.IsSelected(f.ID)
		entries = append(entries, checklist.Entry{
			ID:          f.ID,
			Label:       f.Name,
			Description: f.Description,
			Checked:     checked,
			Locked:      f.ID == catalog.FeatureBasic,
		})
	}
	v.features.SetEntries(entries)
}

// Update handles messages for the wizard.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		v.features.SetDimensions(msg.Width, msg.Height-8)
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil

	case messages.StateSaved:
		if msg.Err != nil {
			v.err = msg.Err
		}
		return v, nil

	case messages.TermsGenerated:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.document = msg.Document
		v.scroll = 0
		v.step = StepPreview
		return v, nil

	case messages.ExportCompleted:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.exportPath = msg.Path
		v.step = StepComplete
		return v, nil

	case refreshFeatures:
		v.loadFeatures()
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

// refreshFeatures reloads the checklist after defaults were applied.
type refreshFeatures struct{}

// handleKeyMsg handles key presses based on the current step.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.String() == "esc" {
		switch v.step {
		case StepServiceInfo:
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		case StepSelectFeatures:
			v.step = StepServiceInfo
			return v, v.focusInfo(0)
		case StepPreview:
			v.step = StepSelectFeatures
			return v, nil
		case StepExport:
			v.step = StepPreview
			return v, nil
		case StepComplete:
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		}
	}

	switch v.step {
	case StepServiceInfo:
		return v.handleInfoInput(msg)
	case StepSelectFeatures:
		return v.handleFeatureSelect(msg)
	case StepPreview:
		return v.handlePreview(msg)
	case StepExport:
		return v.handleExportSelect(msg)
	case StepComplete:
		if msg.String() == keyEnter {
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		}
	}

	return v, nil
}

func (v *View) focusInfo(index int) tea.Cmd {
	for i := range v.infoInputs {
		v.infoInputs[i].Blur()
	}
	v.focusIndex = index
	return v.infoInputs[index].Focus()
}

func (v *View) handleInfoInput(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "tab", keyDown:
		next := (v.focusIndex + 1) % len(v.infoInputs)
		return v, v.focusInfo(next)
	case "shift+tab", "up":
		prev := v.focusIndex - 1
		if prev < 0 {
			prev = len(v.infoInputs) - 1
		}
		return v, v.focusInfo(prev)
	case keyEnter:
		serviceType := domain.TermsServiceType(strings.TrimSpace(v.infoInputs[2].Value()))
		if serviceType != "" && !serviceType.IsValid() {
			v.err = fmt.Errorf("unknown service type %q", serviceType)
			return v, nil
		}
		v.err = nil
		cmd := v.saveServiceInfo()
		v.step = StepSelectFeatures
		v.loadFeatures()
		return v, cmd
	default:
		var cmd tea.Cmd
		v.infoInputs[v.focusIndex], cmd = v.infoInputs[v.focusIndex].Update(msg)
		return v, cmd
	}
}

// saveServiceInfo persists the info inputs as a patch.
func (v *View) saveServiceInfo() tea.Cmd {
	values := make([]string, len(v.infoInputs))
	for i := range v.infoInputs {
		values[i] = strings.TrimSpace(v.infoInputs[i].Value())
	}
	serviceType := domain.TermsServiceType(values[2])

	return func() tea.Msg {
		patch := domain.TermsServiceInfoPatch{
			ServiceName:          &values[0],
			CompanyName:          &values[1],
			Representative:       &values[3],
			CompanyAddress:       &values[4],
			BusinessRegistration: &values[5],
			ContactEmail:         &values[6],
			ContactPhone:         &values[7],
		}
		if serviceType != "" {
			patch.ServiceType = &serviceType
		}
		err := v.termsService.SetServiceInfo(context.Background(), patch)
		return messages.StateSaved{Err: err}
	}
}

func (v *View) handleFeatureSelect(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		v.features.MoveUp()
	case keyDown, "j":
		v.features.MoveDown()
	case " ":
		entry := v.features.Toggle()
		if entry != nil && !entry.Locked {
			id := entry.ID
			return v, func() tea.Msg {
				err := v.termsService.ToggleFeature(context.Background(), id)
				return messages.StateSaved{Err: err}
			}
		}
	case "r":
		return v, func() tea.Msg {
			if err := v.termsService.ApplyDefaults(context.Background()); err != nil {
				return messages.StateSaved{Err: err}
			}
			return refreshFeatures{}
		}
	case keyEnter:
		return v, v.generate()
	}
	return v, nil
}

// generate assembles the document.
func (v *View) generate() tea.Cmd {
	return func() tea.Msg {
		doc, err := v.termsService.Generate(context.Background())
		return messages.TermsGenerated{Document: doc, Err: err}
	}
}

func (v *View) handlePreview(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.scroll > 0 {
			v.scroll--
		}
	case keyDown, "j":
		v.scroll++
	case "e", keyEnter:
		v.step = StepExport
	}
	return v, nil
}

func (v *View) handleExportSelect(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.formatIndex > 0 {
			v.formatIndex--
		}
	case keyDown, "j":
		if v.formatIndex < len(exportFormats)-1 {
			v.formatIndex++
		}
	case keyEnter:
		format := exportFormats[v.formatIndex].format
		return v, func() tea.Msg {
			path, err := v.exportService.ExportTerms(context.Background(), format, ".")
			return messages.ExportCompleted{Path: path, Err: err}
		}
	}
	return v, nil
}

// View renders the wizard.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render("서비스 이용약관 생성"))
	b.WriteString("\n")
	b.WriteString(v.renderStepIndicator())
	b.WriteString("\n\n")

	switch v.step {
	case StepServiceInfo:
		b.WriteString(v.viewServiceInfo())
	case StepSelectFeatures:
		b.WriteString(v.viewSelectFeatures())
	case StepPreview:
		b.WriteString(v.viewPreview())
	case StepExport:
		b.WriteString(v.viewExport())
	case StepComplete:
		b.WriteString(v.viewComplete())
	}

	if v.err != nil {
		b.WriteString("\n\n")
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
	}

	return b.String()
}

// renderStepIndicator shows the wizard progress and completion rate.
func (v *View) renderStepIndicator() string {
	labels := []string{"기본 정보", "기능 선택", "미리보기", "내보내기"}
	current := int(v.step)
	if current >= len(labels) {
		current = len(labels) - 1
	}

	parts := make([]string, len(labels))
	for i, label := range labels {
		if i == current {
			parts[i] = v.styles.Subtitle.Render(label)
		} else {
			parts[i] = v.styles.Muted.Render(label)
		}
	}
	indicator := strings.Join(parts, v.styles.Muted.Render(" → "))

	if v.termsService != nil {
		rate := v.termsService.State().CompletionRate
		indicator += v.styles.Muted.Render(fmt.Sprintf("   (%d%%)", rate))
	}
	return indicator
}

func (v *View) viewServiceInfo() string {
	var b strings.Builder
	b.WriteString(v.styles.Subtitle.Render("서비스 기본 정보"))
	b.WriteString("\n\n")
	for i, f := range infoFields {
		label := f.label
		if i == v.focusIndex {
			label = "> " + label
		} else {
			label = "  " + label
		}
		b.WriteString(v.styles.Normal.Render(label))
		b.WriteString("\n  ")
		b.WriteString(v.infoInputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[tab] next field  [enter] continue  [esc] menu"))
	return b.String()
}

func (v *View) viewSelectFeatures() string {
	var b strings.Builder
	b.WriteString(v.styles.Subtitle.Render("약관에 포함할 기능 선택"))
	b.WriteString("\n\n")
	b.WriteString(v.features.View())
	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[space] toggle  [r] recommended  [enter] generate  [esc] back"))
	return b.String()
}

func (v *View) viewPreview() string {
	if v.document == nil {
		return v.styles.Muted.Render("Generating...")
	}

	var b strings.Builder
	b.WriteString(v.styles.Subtitle.Render(v.document.Title))
	b.WriteString("\n\n")

	lines := previewLines(v.document)
	visible := v.height - 10
	if visible < 5 {
		visible = 5
	}
	maxScroll := len(lines) - visible
	if maxScroll < 0 {
		maxScroll = 0
	}
	if v.scroll > maxScroll {
		v.scroll = maxScroll
	}
	end := v.scroll + visible
	if end > len(lines) {
		end = len(lines)
	}
	b.WriteString(strings.Join(lines[v.scroll:end], "\n"))

	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[j/k] scroll  [e] export  [esc] back"))
	return b.String()
}

// previewLines flattens the document into plain text lines.
func previewLines(doc *domain.GeneratedTerms) []string {
	var lines []string
	for _, ch := range doc.Chapters {
		lines = append(lines, ch.Title, "")
		for _, art := range ch.Articles {
			lines = append(lines, art.Title)
			lines = append(lines, strings.Split(art.Content, "\n")...)
			lines = append(lines, "")
		}
	}
	return lines
}

func (v *View) viewExport() string {
	var b strings.Builder
	b.WriteString(v.styles.Subtitle.Render("내보내기 형식 선택"))
	b.WriteString("\n\n")
	for i, f := range exportFormats {
		cursor := "  "
		line := f.label
		if i == v.formatIndex {
			cursor = "> "
			line = v.styles.Selected.Render(line)
		} else {
			line = v.styles.Normal.Render(line)
		}
		b.WriteString(cursor + line + "\n")
	}
	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] navigate  [enter] export  [esc] back"))
	return b.String()
}

func (v *View) viewComplete() string {
	var b strings.Builder
	b.WriteString(v.styles.Success.Render("완료!"))
	b.WriteString("\n\n")
	if v.exportPath != "" {
		b.WriteString(v.styles.Normal.Render("저장 위치: " + v.exportPath))
	} else {
		b.WriteString(v.styles.Normal.Render("클립보드에 복사되었습니다"))
	}
	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[enter] menu"))
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.features.SetDimensions(width, height-8)
}

// Step returns the current wizard step.
func (v *View) Step() WizardStep {
	return v.step
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
