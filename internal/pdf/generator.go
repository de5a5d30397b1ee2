package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/nutriplan/nutriplan-backend/pkg/model"
	"go.uber.org/zap"
)

// PlanExporter renders a DietPlan into a printable document. It reads the
// plan record only; no core behavior depends on its output.
type PlanExporter struct {
	logger *zap.Logger
}

// NewPlanExporter creates a new PlanExporter.
func NewPlanExporter(logger *zap.Logger) *PlanExporter {
	return &PlanExporter{
		logger: logger,
	}
}

// Export renders the full plan as a PDF.
func (e *PlanExporter) Export(plan *model.DietPlan) ([]byte, error) {
	e.logger.Info("exporting diet plan PDF",
		zap.String("plan_id", plan.ID),
		zap.Int("days", len(plan.Days)),
	)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	e.addTitle(pdf, plan)
	e.addTargets(pdf, plan.Targets)
	e.addProgress(pdf, plan.Progress)
	for i := range plan.Days {
		e.addDay(pdf, &plan.Days[i])
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		e.logger.Error("failed to generate plan PDF", zap.Error(err))
		return nil, fmt.Errorf("failed to generate plan PDF: %w", err)
	}

	e.logger.Info("plan PDF generated", zap.Int("size_bytes", buf.Len()))
	return buf.Bytes(), nil
}

func (e *PlanExporter) addTitle(pdf *gofpdf.Fpdf, plan *model.DietPlan) {
	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(0, 10, plan.Name, "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(0, 8, plan.Description, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("Duration: %d days", plan.DurationDays), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("Generated: %s", time.Now().Format("2006-01-02 15:04")), "", 1, "L", false, 0, "")
	pdf.Ln(10)
}

func (e *PlanExporter) addSectionHeader(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Arial", "B", 14)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(0, 10, title, "", 1, "L", true, 0, "")
	pdf.Ln(3)
	pdf.SetFont("Arial", "", 10)
}

func (e *PlanExporter) addTargets(pdf *gofpdf.Fpdf, targets model.NutritionTargets) {
	e.addSectionHeader(pdf, "Daily Targets")
	pdf.CellFormat(0, 6, fmt.Sprintf("Calories: %d kcal", targets.DailyCalories), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Protein: %d g    Carbs: %d g    Fat: %d g    Fiber: %d g",
		targets.Protein, targets.Carbs, targets.Fat, targets.Fiber), "", 1, "L", false, 0, "")
	pdf.Ln(5)
}

func (e *PlanExporter) addProgress(pdf *gofpdf.Fpdf, progress model.PlanProgress) {
	e.addSectionHeader(pdf, "Progress")
	pdf.CellFormat(0, 6, fmt.Sprintf("Completed days: %d of %d (adherence %d%%)",
		progress.CompletedDays, progress.TotalDays, progress.AdherenceRate), "", 1, "L", false, 0, "")
	pdf.Ln(5)
}

func (e *PlanExporter) addDay(pdf *gofpdf.Fpdf, day *model.DayPlan) {
	e.addSectionHeader(pdf, fmt.Sprintf("Day %d - %s", day.Day, day.Date.Format("2006-01-02")))

	e.addMeal(pdf, "Breakfast", day.Breakfast)
	e.addMeal(pdf, "Lunch", day.Lunch)
	e.addMeal(pdf, "Dinner", day.Dinner)
	for i, snack := range day.Snacks {
		label := "Snack"
		if len(day.Snacks) > 1 {
			label = fmt.Sprintf("Snack %d", i+1)
		}
		e.addMeal(pdf, label, snack)
	}

	pdf.SetFont("Arial", "I", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Day total: %d kcal", day.TotalCalories), "", 1, "L", false, 0, "")
	pdf.Ln(5)
	pdf.SetFont("Arial", "", 10)
}

func (e *PlanExporter) addMeal(pdf *gofpdf.Fpdf, label string, meal model.Meal) {
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("%s: %s", label, meal.Name), "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	if meal.Description != "" {
		pdf.MultiCell(0, 5, meal.Description, "", "L", false)
	}
	pdf.CellFormat(0, 5, fmt.Sprintf("%.0f kcal | P %.0f g | C %.0f g | F %.0f g",
		meal.Nutrition.Calories, meal.Nutrition.Protein, meal.Nutrition.Carbs, meal.Nutrition.Fat),
		"", 1, "L", false, 0, "")

	if len(meal.Ingredients) > 0 {
		var parts []string
		for _, ing := range meal.Ingredients {
			parts = append(parts, fmt.Sprintf("%s (%.0f %s)", ing.Name, ing.Amount, ing.Unit))
		}
		pdf.MultiCell(0, 5, "Ingredients: "+strings.Join(parts, ", "), "", "L", false)
	}
	pdf.Ln(2)
}
