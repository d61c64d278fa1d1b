package generate

import (
	"context"
	"strings"
	"testing"

	"github.com/artiklo/legato/internal/assembly"
	"github.com/artiklo/legato/internal/clause"
	"github.com/artiklo/legato/internal/model"
	"github.com/artiklo/legato/internal/rule"
)

func testGenerator() *Generator {
	store := clause.NewMemoryStore()
	return NewGenerator(store, assembly.NewAssembler(store, rule.NewEngine()))
}

func rentDisputeAnswers() model.AnswerSet {
	return model.AnswerSet{
		"mahkeme_adi":          model.String("İstanbul Sulh Hukuk Mahkemesi"),
		"dosya_no":             model.String("2024/123 E."),
		"kiraci_ad_soyad":      model.String("Ahmet Yılmaz"),
		"kiraci_tc":            model.String("12345678901"),
		"kiraci_adres":         model.String("Kadıköy, İstanbul"),
		"ev_sahibi_ad_soyad":   model.String("Mehmet Demir"),
		"ev_sahibi_adres":      model.String("Beşiktaş, İstanbul"),
		"mulk_adres":           model.String("Kadıköy Mah. Test Sk. No:5 D:3"),
		"mulk_il_ilce":         model.String("İstanbul/Kadıköy"),
		"sozlesme_tarihi":      model.String("15.01.2023"),
		"ilk_kira_bedeli":      model.Number(3000),
		"mevcut_kira_bedeli":   model.Number(3000),
		"artirim_talep_tarihi": model.String("15.01.2024"),
		"eski_kira_bedeli":     model.Number(3000),
		"yeni_kira_talebi":     model.Number(4200),
		"artirim_orani":        model.Number(40),
		"itiraz_turu":          model.String("karsi_oneri"),
		"karsi_oneri_var":      model.Bool(true),
		"onerilen_kira_bedeli": model.Number(3500),
	}
}

func TestGenerator_EndToEnd(t *testing.T) {
	gen := testGenerator()

	report := gen.Generate(context.Background(), Request{
		DocumentType: DocTypeRentDispute,
		Answers:      rentDisputeAnswers(),
	})
	if !report.Success {
		t.Fatalf("Expected success, got %q", report.Error)
	}
	if report.SessionID == "" {
		t.Error("Expected a generated session id")
	}

	doc := report.Document
	if doc.Title != "Ahmet Yılmaz - Kira Artırım İtirazı (İstanbul/Kadıköy)" {
		t.Errorf("Title = %q", doc.Title)
	}
	// The header rule tests the injected document type; the wizard never
	// asks for it.
	if !strings.Contains(doc.Content, "KIRA ARTIRIMI İTİRAZI") {
		t.Error("Expected header clause in content")
	}
	if doc.QualityScore < 0 || doc.QualityScore > 100 {
		t.Errorf("QualityScore = %d, want within [0, 100]", doc.QualityScore)
	}
	if doc.WordCount == 0 || doc.EstimatedPages == 0 {
		t.Errorf("Expected word and page counts, got %d words / %d pages", doc.WordCount, doc.EstimatedPages)
	}
	if doc.Preview == "" || len(doc.Preview) > 410 {
		t.Errorf("Preview length = %d", len(doc.Preview))
	}
	if report.Validation == nil || !report.Validation.Valid {
		t.Errorf("Expected valid answers, got %+v", report.Validation)
	}
	if report.Performance.Total <= 0 {
		t.Error("Expected total duration recorded")
	}
}

func TestGenerator_Deterministic(t *testing.T) {
	gen := testGenerator()
	ctx := context.Background()

	first := gen.Generate(ctx, Request{DocumentType: DocTypeRentDispute, Answers: rentDisputeAnswers()})
	second := gen.Generate(ctx, Request{DocumentType: DocTypeRentDispute, Answers: rentDisputeAnswers()})
	if first.Document.Content != second.Document.Content {
		t.Error("Expected identical content for identical answers")
	}
	if first.SessionID == second.SessionID {
		t.Error("Expected distinct session ids per run")
	}
}

func TestGenerator_SessionIDPassedThrough(t *testing.T) {
	gen := testGenerator()

	report := gen.Generate(context.Background(), Request{
		DocumentType: DocTypeRentDispute,
		Answers:      rentDisputeAnswers(),
		SessionID:    "session-42",
	})
	if report.SessionID != "session-42" {
		t.Errorf("SessionID = %q, want session-42", report.SessionID)
	}
}

func TestGenerator_UnsupportedDocumentType(t *testing.T) {
	gen := testGenerator()

	report := gen.Generate(context.Background(), Request{
		DocumentType: "bosanma_dilekce",
		Answers:      rentDisputeAnswers(),
	})
	if report.Success {
		t.Fatal("Expected failure for unknown document type")
	}
	if !strings.Contains(report.Error, "unsupported document type") {
		t.Errorf("Error = %q", report.Error)
	}
}

func TestGenerator_NoReseedForUncoveredContext(t *testing.T) {
	gen := testGenerator()
	ctx := context.Background()

	// First run populates the store with the built-in library
	if report := gen.Generate(ctx, Request{DocumentType: DocTypeRentDispute, Answers: rentDisputeAnswers()}); !report.Success {
		t.Fatalf("Expected success, got %q", report.Error)
	}

	// A registered type whose usage context has no built-in clauses must not
	// trigger an import attempt on every call
	ruleSet := &model.RuleSet{
		DocumentType: "genel_dilekce",
		Rules: []model.Rule{
			{
				ID: "PICK", Priority: 1,
				Conditions: []model.Condition{
					{Field: "document_type", Operator: model.OpEqual, Value: model.String(DocTypeGeneralPetition)},
				},
				ThenClauses: []string{"HEADER_RENT_DISPUTE_TR_v1", "SIGNATURE_SECTION_TR_v1"},
			},
		},
	}
	gen.Register(DocTypeGeneralPetition, ruleSet, model.ContextGeneralPetition, nil)

	for i := 0; i < 2; i++ {
		report := gen.Generate(ctx, Request{DocumentType: DocTypeGeneralPetition, Answers: rentDisputeAnswers()})
		if !report.Success {
			t.Fatalf("Expected success on run %d, got %q", i, report.Error)
		}
		for _, step := range report.Log {
			if step.Step == "database_check" && step.Status != model.StatusSuccess {
				t.Errorf("Run %d: expected clean store check, got %s: %s", i, step.Status, step.Message)
			}
		}
	}
}

func TestGenerator_IncompleteAnswersStillGenerate(t *testing.T) {
	gen := testGenerator()

	answers := rentDisputeAnswers()
	delete(answers, "kiraci_tc")
	delete(answers, "sozlesme_tarihi")

	report := gen.Generate(context.Background(), Request{
		DocumentType: DocTypeRentDispute,
		Answers:      answers,
	})
	if !report.Success {
		t.Fatalf("Expected degraded success, got %q", report.Error)
	}
	if report.Validation.Valid {
		t.Error("Expected validation to flag missing fields")
	}
	if len(report.Validation.MissingFields) != 2 {
		t.Errorf("MissingFields = %v, want 2 entries", report.Validation.MissingFields)
	}
}

func TestScore_Formula(t *testing.T) {
	base := func() *model.AssemblyResult {
		return &model.AssemblyResult{
			Success: true,
			Metadata: model.DocumentMetadata{
				ClauseCount:      8,
				TotalCharacters:  3000,
				LegalReferences:  []string{"TBK m. 344", "TBK m. 2", "HMK m. 119", "HMK m. 120"},
				MissingVariables: []string{},
			},
		}
	}

	// 100 + 5 legal reference bonus, clamped to 100
	if got := Score(base()); got != 100 {
		t.Errorf("Score() = %d, want 100", got)
	}

	r := base()
	r.Metadata.MissingVariables = []string{"A", "B"}
	if got := Score(r); got != 95 {
		t.Errorf("Score with 2 missing vars = %d, want 95", got)
	}

	r = base()
	r.Metadata.ClauseCount = 3
	r.Metadata.TotalCharacters = 500
	if got := Score(r); got != 80 {
		t.Errorf("Score for thin document = %d, want 80", got)
	}

	r = base()
	r.Log = []model.AssemblyLogEntry{
		{Status: model.StatusError},
		{Status: model.StatusWarning},
		{Status: model.StatusWarning},
		{Status: model.StatusSuccess},
	}
	if got := Score(r); got != 91 {
		t.Errorf("Score with log penalties = %d, want 91", got)
	}
}

func TestScore_Clamped(t *testing.T) {
	r := &model.AssemblyResult{
		Metadata: model.DocumentMetadata{
			ClauseCount:      1,
			TotalCharacters:  10,
			MissingVariables: []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M", "N", "O", "P", "Q", "R", "S", "T"},
		},
	}
	if got := Score(r); got != 0 {
		t.Errorf("Score() = %d, want clamp at 0", got)
	}
}

func TestPostProcess(t *testing.T) {
	in := "Birinci satır\n\n\n\nİkinci satır\n   girintili\n\n  \n\nSon  "
	got := PostProcess(in)

	if strings.Contains(got, "\n\n\n") {
		t.Errorf("Expected blank runs collapsed, got %q", got)
	}
	if strings.Contains(got, "\n   girintili") {
		t.Errorf("Expected line-leading whitespace stripped, got %q", got)
	}
	if strings.HasSuffix(got, " ") || strings.HasPrefix(got, " ") {
		t.Errorf("Expected trimmed output, got %q", got)
	}
}

func TestTitle_Fallbacks(t *testing.T) {
	got := Title(DocTypeRentDispute, model.AnswerSet{})
	if got != "Kiracı - Kira Artırım İtirazı (Taşınmaz)" {
		t.Errorf("Title = %q", got)
	}
	if got := Title("is_sozlesme", nil); got != "Hukuki Belge - is_sozlesme" {
		t.Errorf("Title = %q", got)
	}
}

func TestEstimatePages(t *testing.T) {
	tests := []struct {
		words int
		want  int
	}{
		{0, 0},
		{1, 1},
		{250, 1},
		{251, 2},
		{1200, 5},
	}
	for _, tt := range tests {
		if got := estimatePages(tt.words); got != tt.want {
			t.Errorf("estimatePages(%d) = %d, want %d", tt.words, got, tt.want)
		}
	}
}
