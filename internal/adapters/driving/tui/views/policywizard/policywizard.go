// Package policywizard provides the privacy policy wizard view for the TUI.
package policywizard

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lawkit-dev/lawkit-cli/internal/adapters/driven/export"
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
	StepSelectItems
	StepDetails
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
	{"serviceType", "서비스 유형", "saas, commerce, community, app, offline"},
	{"contactEmail", "연락처 이메일", "contact@example.com"},
	{"contactPhone", "연락처 전화 (선택)", "02-0000-0000"},
	{"privacyOfficerName", "개인정보 보호책임자 (선택)", "홍길동"},
	{"privacyOfficerContact", "보호책임자 연락처 (선택)", "privacy@example.com"},
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

// View is the privacy policy wizard view.
type View struct {
	styles        *styles.Styles
	policyService driving.PolicyService
	exportService driving.ExportService

	// Wizard state
	step WizardStep

	// Service info inputs
	infoInputs []textinput.Model
	focusIndex int

	// Item selection
	items *checklist.Checklist

	// Detail inputs for the current item
	detailIDs      []string
	detailIndex    int
	purposeInput   textinput.Model
	itemsInput     textinput.Model
	retentionInput textinput.Model
	detailFocus    int

	// Preview
	document *domain.GeneratedDocument
	scroll   int

	// Export
	formatIndex int
	exportPath  string

	err    error
	width  int
	height int
	ready  bool
}

// NewView creates a new privacy policy wizard view.
func NewView(s *styles.Styles, policyService driving.PolicyService, exportService driving.ExportService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	purposeInput := textinput.New()
	purposeInput.Placeholder = "수집 목적"
	purposeInput.CharLimit = 256

	itemsInput := textinput.New()
	itemsInput.Placeholder = "수집 항목 (쉼표로 구분)"
	itemsInput.CharLimit = 256

	retentionInput := textinput.New()
	retentionInput.Placeholder = "withdrawal, 1year, 3years, 5years 또는 직접 입력"
	retentionInput.CharLimit = 128

	return &View{
		styles:         s,
		policyService:  policyService,
		exportService:  exportService,
		step:           StepServiceInfo,
		items:          checklist.New(s),
		purposeInput:   purposeInput,
		itemsInput:     itemsInput,
		retentionInput: retentionInput,
	}
}

// Init initialises the view from the persisted wizard state.
func (v *View) Init() tea.Cmd {
	v.initInfoInputs()
	v.loadItems()
	if len(v.infoInputs) > 0 {
		return v.infoInputs[0].Focus()
	}
	return nil
}

// Reset restarts the wizard at the first step, keeping saved state.
func (v *View) Reset() {
	v.step = StepServiceInfo
	v.focusIndex = 0
	v.detailIndex = 0
	v.scroll = 0
	v.formatIndex = 0
	v.exportPath = ""
	v.err = nil
}

// initInfoInputs seeds the service info inputs from the saved state.
func (v *View) initInfoInputs() {
	var info domain.ServiceInfo
	if v.policyService != nil {
		info = v.policyService.State().ServiceInfo
	}
	values := map[string]string{
		"serviceName":           info.ServiceName,
		"companyName":           info.CompanyName,
		"serviceType":           string(info.ServiceType),
		"contactEmail":          info.ContactEmail,
		"contactPhone":          info.ContactPhone,
		"privacyOfficerName":    info.PrivacyOfficerName,
		"privacyOfficerContact": info.PrivacyOfficerContact,
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

// loadItems fills the checklist from the catalog and saved selection.
func (v *View) loadItems() {
	var state *domain.PolicyState
	if v.policyService != nil {
		state = v.policyService.State()
	}

	items := catalog.ItemsByCategory(catalog.CategoryBasic)
	if state != nil && state.IsAdvancedMode {
		items = append(items, catalog.ItemsByCategory(catalog.CategoryAdvanced)...)
	}

	entries := make([]checklist.Entry, 0, len(items))
	for _, item := range items {
		checked := state != nil && state.IsSelected(item.ID)
		entries = append(entries, checklist.Entry{
			ID:          item.ID,
			Label:       item.Name,
			Description: item.Description,
			Checked:     checked,
		})
	}
	v.items.SetEntries(entries)
}

// Update handles messages for the wizard.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		v.items.SetDimensions(msg.Width, msg.Height-8)
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil

	case messages.StateSaved:
		if msg.Err != nil {
			v.err = msg.Err
		}
		return v, nil

	case messages.PolicyGenerated:
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

	case refreshItems:
		v.loadItems()
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

// handleKeyMsg handles key presses based on the current step.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.String() == "esc" {
		switch v.step {
		case StepServiceInfo:
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		case StepSelectItems:
			v.step = StepServiceInfo
			return v, v.focusInfo(0)
		case StepDetails:
			v.step = StepSelectItems
			return v, nil
		case StepPreview:
			v.step = StepDetails
			return v, v.focusDetail(0)
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
	case StepSelectItems:
		return v.handleItemSelect(msg)
	case StepDetails:
		return v.handleDetailInput(msg)
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
		serviceType := domain.ServiceType(strings.TrimSpace(v.infoInputs[2].Value()))
		if serviceType != "" && !serviceType.IsValid() {
			v.err = fmt.Errorf("unknown service type %q", serviceType)
			return v, nil
		}
		v.err = nil
		cmd := v.saveServiceInfo()
		v.step = StepSelectItems
		v.loadItems()
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
	serviceType := domain.ServiceType(values[2])

	return func() tea.Msg {
		patch := domain.ServiceInfoPatch{
			ServiceName:           &values[0],
			CompanyName:           &values[1],
			ContactEmail:          &values[3],
			ContactPhone:          &values[4],
			PrivacyOfficerName:    &values[5],
			PrivacyOfficerContact: &values[6],
		}
		if serviceType != "" {
			patch.ServiceType = &serviceType
		}
		err := v.policyService.SetServiceInfo(context.Background(), patch)
		return messages.StateSaved{Err: err}
	}
}

func (v *View) handleItemSelect(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		v.items.MoveUp()
	case keyDown, "j":
		v.items.MoveDown()
	case " ":
		entry := v.items.Toggle()
		if entry != nil {
			id := entry.ID
			return v, func() tea.Msg {
				err := v.policyService.ToggleItem(context.Background(), id)
				return messages.StateSaved{Err: err}
			}
		}
	case "r":
		return v, func() tea.Msg {
			if err := v.policyService.ApplyDefaults(context.Background()); err != nil {
				return messages.StateSaved{Err: err}
			}
			return refreshItems{}
		}
	case "a":
		advanced := !v.policyService.State().IsAdvancedMode
		return v, func() tea.Msg {
			if err := v.policyService.SetAdvancedMode(context.Background(), advanced); err != nil {
				return messages.StateSaved{Err: err}
			}
			return refreshItems{}
		}
	case "A":
		changed := v.items.ToggleAll()
		if len(changed) == 0 {
			return v, nil
		}
		return v, func() tea.Msg {
			ctx := context.Background()
			for _, id := range changed {
				if err := v.policyService.ToggleItem(ctx, id); err != nil {
					return messages.StateSaved{Err: err}
				}
			}
			return messages.StateSaved{}
		}
	case keyEnter:
		selected := v.policyService.State().SelectedItems
		if len(selected) == 0 {
			v.err = fmt.Errorf("select at least one item")
			return v, nil
		}
		v.err = nil
		v.detailIDs = append([]string(nil), selected...)
		v.detailIndex = 0
		v.step = StepDetails
		v.seedDetailInputs()
		return v, v.focusDetail(0)
	}
	return v, nil
}

// refreshItems reloads the checklist after defaults or mode changes.
type refreshItems struct{}

func (v *View) focusDetail(index int) tea.Cmd {
	v.purposeInput.Blur()
	v.itemsInput.Blur()
	v.retentionInput.Blur()
	v.detailFocus = index
	switch index {
	case 0:
		return v.purposeInput.Focus()
	case 1:
		return v.itemsInput.Focus()
	default:
		return v.retentionInput.Focus()
	}
}

// seedDetailInputs fills the detail inputs for the current item.
func (v *View) seedDetailInputs() {
	if v.detailIndex >= len(v.detailIDs) {
		return
	}
	id := v.detailIDs[v.detailIndex]
	detail := v.policyService.State().DetailInputs[id]
	v.purposeInput.SetValue(detail.Purpose)
	v.itemsInput.SetValue(strings.Join(detail.Items, ", "))
	if detail.RetentionPeriod == domain.RetentionCustom {
		v.retentionInput.SetValue(detail.CustomRetention)
	} else {
		v.retentionInput.SetValue(string(detail.RetentionPeriod))
	}
}

func (v *View) handleDetailInput(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "tab", keyDown:
		return v, v.focusDetail((v.detailFocus + 1) % 3)
	case "shift+tab", "up":
		prev := v.detailFocus - 1
		if prev < 0 {
			prev = 2
		}
		return v, v.focusDetail(prev)
	case keyEnter:
		saveCmd := v.saveDetail()
		v.detailIndex++
		if v.detailIndex < len(v.detailIDs) {
			v.seedDetailInputs()
			return v, tea.Batch(saveCmd, v.focusDetail(0))
		}
		// Last item done, generate the document.
		return v, tea.Sequence(saveCmd, v.generate())
	default:
		var cmd tea.Cmd
		switch v.detailFocus {
		case 0:
			v.purposeInput, cmd = v.purposeInput.Update(msg)
		case 1:
			v.itemsInput, cmd = v.itemsInput.Update(msg)
		default:
			v.retentionInput, cmd = v.retentionInput.Update(msg)
		}
		return v, cmd
	}
}

// saveDetail persists the detail inputs for the current item.
func (v *View) saveDetail() tea.Cmd {
	id := v.detailIDs[v.detailIndex]
	purpose := strings.TrimSpace(v.purposeInput.Value())

	items := []string{}
	for _, part := range strings.Split(v.itemsInput.Value(), ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}

	retention := domain.RetentionPeriod(strings.TrimSpace(v.retentionInput.Value()))
	custom := ""
	switch retention {
	case domain.RetentionWithdrawal, domain.RetentionOneYear,
		domain.RetentionThreeYears, domain.RetentionFiveYears, "":
		if retention == "" {
			retention = domain.RetentionWithdrawal
		}
	default:
		custom = string(retention)
		retention = domain.RetentionCustom
	}

	return func() tea.Msg {
		patch := domain.DetailInputPatch{
			Purpose:         &purpose,
			Items:           &items,
			RetentionPeriod: &retention,
			CustomRetention: &custom,
		}
		err := v.policyService.SetDetail(context.Background(), id, patch)
		return messages.StateSaved{Err: err}
	}
}

// generate assembles the document.
func (v *View) generate() tea.Cmd {
	return func() tea.Msg {
		doc, err := v.policyService.Generate(context.Background())
		return messages.PolicyGenerated{Document: doc, Err: err}
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
			path, err := v.exportService.ExportPolicy(context.Background(), format, ".")
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
	b.WriteString(v.styles.Title.Render("개인정보처리방침 생성"))
	b.WriteString("\n")
	b.WriteString(v.renderStepIndicator())
	b.WriteString("\n\n")

	switch v.step {
	case StepServiceInfo:
		b.WriteString(v.viewServiceInfo())
	case StepSelectItems:
		b.WriteString(v.viewSelectItems())
	case StepDetails:
		b.WriteString(v.viewDetails())
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
	labels := []string{"기본 정보", "항목 선택", "상세 입력", "미리보기", "내보내기"}
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

	if v.policyService != nil {
		rate := v.policyService.State().CompletionRate
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

func (v *View) viewSelectItems() string {
	var b strings.Builder
	b.WriteString(v.styles.Subtitle.Render("처리하는 개인정보 항목 선택"))
	b.WriteString("\n\n")
	b.WriteString(v.items.View())
	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[space] toggle  [A] select all  [r] recommended  [a] advanced  [enter] continue  [esc] back"))
	return b.String()
}

func (v *View) viewDetails() string {
	if v.detailIndex >= len(v.detailIDs) {
		return v.styles.Muted.Render("Generating...")
	}
	id := v.detailIDs[v.detailIndex]

	var b strings.Builder
	header := fmt.Sprintf("%s (%d/%d)", catalog.ItemName(id), v.detailIndex+1, len(v.detailIDs))
	b.WriteString(v.styles.Subtitle.Render(header))
	b.WriteString("\n\n")

	fields := []struct {
		label string
		view  string
	}{
		{"수집 목적", v.purposeInput.View()},
		{"수집 항목", v.itemsInput.View()},
		{"보유 기간", v.retentionInput.View()},
	}
	for i, f := range fields {
		label := "  " + f.label
		if i == v.detailFocus {
			label = "> " + f.label
		}
		b.WriteString(v.styles.Normal.Render(label))
		b.WriteString("\n  ")
		b.WriteString(f.view)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[tab] next field  [enter] next item  [esc] back"))
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
func previewLines(doc *domain.GeneratedDocument) []string {
	var lines []string
	for _, s := range doc.Sections {
		if s.Title != "" {
			lines = append(lines, s.Title, "")
		}
		lines = append(lines, strings.Split(export.StripTags(s.Content), "\n")...)
		lines = append(lines, "")
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
	v.items.SetDimensions(width, height-8)
}

// Step returns the current wizard step.
func (v *View) Step() WizardStep {
	return v.step
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}

// HandleRefresh reloads the item checklist from saved state. Called by
// the app when an asynchronous mutation finished.
func (v *View) HandleRefresh() {
	v.loadItems()
}
