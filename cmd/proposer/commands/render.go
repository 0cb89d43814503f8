package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"proposer/internal/domain"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func stepIcon(status domain.StepStatus) string {
	switch status {
	case domain.StepDone:
		return "✓"
	case domain.StepInProgress:
		return "→"
	default:
		return "○"
	}
}

func renderSteps(ws *domain.Workspace) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Workflow") + "\n")
	for i, name := range domain.StepNames {
		status := ws.Workflow.Status[i]
		line := fmt.Sprintf("  %s %d. %s", stepIcon(status), i, name)
		switch {
		case i == ws.Workflow.Active:
			line = activeStyle.Render(line)
		case status == domain.StepDone:
			line = doneStyle.Render(line)
		case status == domain.StepTodo:
			line = dimStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func renderChecklist(ws *domain.Workspace) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Upload tasks") + "\n")
	if len(ws.Checklist.Uploads) == 0 {
		b.WriteString(dimStyle.Render("  (none)") + "\n")
	}
	for _, task := range ws.Checklist.Uploads {
		b.WriteString(fmt.Sprintf("  %-24s %s\n", task.ID, renderEvidenceStatus(ws.DisplayStatus(task.ID))))
	}
	b.WriteString(titleStyle.Render("Draft tasks") + "\n")
	if len(ws.Checklist.Drafts) == 0 {
		b.WriteString(dimStyle.Render("  (none)") + "\n")
	}
	for _, task := range ws.Checklist.Drafts {
		name := task.ID
		if task.SectionVariant != "" {
			name += " (" + task.SectionVariant + ")"
		}
		marker := dimStyle.Render("not drafted")
		if out, ok := ws.Outputs[task.ID]; ok {
			marker = doneStyle.Render(fmt.Sprintf("drafted, score %.1f", out.Evaluation.Score))
		}
		b.WriteString(fmt.Sprintf("  %-24s %s\n", name, marker))
	}
	return b.String()
}

func renderEvidenceStatus(status domain.EvidenceStatus) string {
	switch status {
	case domain.EvidenceDetected:
		return doneStyle.Render("detected")
	case domain.EvidenceUploaded:
		return warnStyle.Render("uploaded (pending parse)")
	case domain.EvidenceUploading:
		return activeStyle.Render("uploading…")
	case domain.EvidenceError:
		return errStyle.Render("upload failed")
	default:
		return dimStyle.Render("not uploaded")
	}
}

func renderChecks(checks []domain.ValidationCheck) string {
	if len(checks) == 0 {
		return doneStyle.Render("No validation issues detected.") + "\n"
	}
	var b strings.Builder
	for _, c := range checks {
		line := fmt.Sprintf("  %s: %s", c.Code, c.Message)
		if strings.EqualFold(c.Level, "error") {
			line = errStyle.Render(line)
		} else {
			line = warnStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func renderEnv(env domain.EnvConfig) string {
	var pills []string
	if env.AppConfigLabel != "" {
		pills = append(pills, "Env: "+env.AppConfigLabel)
	}
	for _, grant := range []string{"EDG", "PSG"} {
		if v := env.PacksLatest[grant]; v != "" {
			pills = append(pills, grant+": "+v)
		}
	}
	if env.ModelWorker != "" {
		pills = append(pills, "Model: "+env.ModelWorker)
	}
	if env.ModelManager != "" {
		pills = append(pills, "Manager: "+env.ModelManager)
	}
	if env.FeaturePSGEnabled {
		pills = append(pills, doneStyle.Render("PSG: enabled"))
	} else {
		pills = append(pills, dimStyle.Render("PSG: disabled"))
	}
	return strings.Join(pills, "  ") + "\n"
}
