package services

import (
	"testing"
)

func TestGenerateQuotePDF_Basic(t *testing.T) {
	result, err := GenerateQuotePDF(sampleQuote())
	if err != nil {
		t.Fatalf("GenerateQuotePDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateQuotePDF() returned empty bytes")
	}
	// PDF files start with %PDF
	if len(result) > 4 && string(result[:5]) != "%PDF-" {
		t.Errorf("result does not start with PDF header, got %q", string(result[:5]))
	}
}

func TestGenerateQuotePDF_EmptyQuote(t *testing.T) {
	result, err := GenerateQuotePDF(QuoteExportData{CreatedDate: "07 Mar 2026"})
	if err != nil {
		t.Fatalf("GenerateQuotePDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateQuotePDF() returned empty bytes")
	}
}

func TestGenerateQuotePDF_ManyLines(t *testing.T) {
	data := sampleQuote()
	plain, _ := FindCategory(CategoryPlainPanels)
	for i := 0; i < 60; i++ {
		data.Lines = append(data.Lines, NewQuoteLine(plain, i+3, `Up to 36"`, map[string]int{`Over 36"`: 1}))
	}

	result, err := GenerateQuotePDF(data)
	if err != nil {
		t.Fatalf("GenerateQuotePDF() with page overflow error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateQuotePDF() returned empty bytes")
	}
}
