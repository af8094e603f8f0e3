package domain

import (
	"strings"
	"testing"
)

func TestMode_Quotas(t *testing.T) {
	t.Run("単発モードは10/10を要求するのだ", func(t *testing.T) {
		if got := ModeSingle.TitleCount(); got != 10 {
			t.Errorf("TitleCount = %d, want 10", got)
		}
		if got := ModeSingle.HashtagCount(); got != 10 {
			t.Errorf("HashtagCount = %d, want 10", got)
		}
	})

	t.Run("一括モードは3/5を要求するのだ", func(t *testing.T) {
		if got := ModeBatch.TitleCount(); got != 3 {
			t.Errorf("TitleCount = %d, want 3", got)
		}
		if got := ModeBatch.HashtagCount(); got != 5 {
			t.Errorf("HashtagCount = %d, want 5", got)
		}
	})

	t.Run("失敗ポリシーはモードで分岐するのだ", func(t *testing.T) {
		if !ModeSingle.FailsOnEmptyContent() || !ModeSingle.RequiresImage() {
			t.Error("単発モードは空コンテンツと画像欠落を致命的エラーとして扱うべき")
		}
		if ModeBatch.FailsOnEmptyContent() || ModeBatch.RequiresImage() {
			t.Error("一括モードはプレースホルダーで継続すべき")
		}
	})
}

func TestSourceRow_Topic(t *testing.T) {
	row := SourceRow{Prompt: "new menu", Content: "ignored"}
	if got := row.Topic(); got != "new menu" {
		t.Errorf("Topic = %q, prompt優先のはず", got)
	}

	row = SourceRow{Content: "fallback content"}
	if got := row.Topic(); got != "fallback content" {
		t.Errorf("Topic = %q, contentへフォールバックするはず", got)
	}
}

func TestGenerationResponse_Text(t *testing.T) {
	resp := &GenerationResponse{Parts: []ResponsePart{
		{Text: "  hello "},
		{MIMEType: "image/png", Data: []byte{1, 2}},
		{Text: "world  "},
	}}
	if got := resp.Text(); got != "hello world" {
		t.Errorf("Text = %q, want %q", got, "hello world")
	}
}

func TestDataURI_RoundTrip(t *testing.T) {
	data := []byte("fake-png-bytes")
	uri := BuildDataURI("image/png", data)

	if !strings.HasPrefix(uri, "data:image/png;base64,") {
		t.Fatalf("予期しないプレフィックス: %q", uri)
	}

	mimeType, decoded, err := DecodeDataURI(uri)
	if err != nil {
		t.Fatalf("DecodeDataURI失敗: %v", err)
	}
	if mimeType != "image/png" {
		t.Errorf("mimeType = %q", mimeType)
	}
	if string(decoded) != string(data) {
		t.Errorf("デコード結果が一致しない: %q", decoded)
	}
}

func TestDecodeDataURI_Invalid(t *testing.T) {
	if _, _, err := DecodeDataURI("https://example.com/logo.png"); err == nil {
		t.Error("data URI以外はエラーになるべき")
	}
}

func TestBatchResult_SuccessCount(t *testing.T) {
	br := BatchResult{
		{Description: "a"},
		nil,
		{Description: "b"},
		nil,
	}
	if got := br.SuccessCount(); got != 2 {
		t.Errorf("SuccessCount = %d, want 2", got)
	}
}
