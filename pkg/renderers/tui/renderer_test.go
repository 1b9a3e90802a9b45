package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/AlecAivazis/survey/v2"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formmirror/pkg/answers"
	"github.com/goliatone/go-formmirror/pkg/fields"
	"github.com/goliatone/go-formmirror/pkg/render"
)

type stubDriver struct {
	inputs       []string
	passwords    []string
	textAreas    []string
	confirm      []bool
	infoMessages []string
	prompts      []string
	defaults     []string
	inputPos     int
	passPos      int
	textPos      int
	confirmPos   int
	validators   []func(string) error
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.prompts = append(s.prompts, cfg.Message)
	s.validators = append(s.validators, cfg.Validator)
	s.defaults = append(s.defaults, cfg.Default)
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Password(_ context.Context, cfg InputConfig) (string, error) {
	s.prompts = append(s.prompts, cfg.Message)
	s.validators = append(s.validators, cfg.Validator)
	if s.passPos >= len(s.passwords) {
		return "", errors.New("no password scripted")
	}
	val := s.passwords[s.passPos]
	s.passPos++
	return val, nil
}

func (s *stubDriver) TextArea(_ context.Context, cfg TextAreaConfig) (string, error) {
	s.prompts = append(s.prompts, cfg.Message)
	s.validators = append(s.validators, cfg.Validator)
	if s.textPos >= len(s.textAreas) {
		return "", errors.New("no textarea scripted")
	}
	val := s.textAreas[s.textPos]
	s.textPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func testForm() render.Form {
	return render.Form{Fields: fields.FieldSet{
		{Key: "entry.1", Label: "Your <b>name</b>", Type: "text"},
		{Key: "entry.2", Label: "Secret", Type: "password"},
		{Key: "entry.3", Label: "Notes", Type: "textarea"},
	}}
}

func TestCollect_PromptsEachFieldByType(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"Ada"},
		passwords: []string{"s3cret"},
		textAreas: []string{"line one\nline two"},
	}
	r, err := New(WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	got, err := r.Collect(context.Background(), testForm(), render.RenderOptions{})
	if err != nil {
		t.Fatalf("collect: %v", err)
	}

	want := []answers.Entry{
		{Key: "entry.1", Value: "Ada"},
		{Key: "entry.2", Value: "s3cret"},
		{Key: "entry.3", Value: "line one\nline two"},
	}
	if diff := cmp.Diff(want, got.Entries()); diff != "" {
		t.Fatalf("answers mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Your name", "Secret", "Notes"}, driver.prompts); diff != "" {
		t.Fatalf("prompts mismatch (-want +got):\n%s", diff)
	}
}

func TestCollect_PromptsCarryRequiredValidator(t *testing.T) {
	driver := &stubDriver{inputs: []string{"a"}, passwords: []string{"b"}, textAreas: []string{"c"}}
	r, _ := New(WithPromptDriver(driver))

	if _, err := r.Collect(context.Background(), testForm(), render.RenderOptions{}); err != nil {
		t.Fatalf("collect: %v", err)
	}
	if len(driver.validators) != 3 {
		t.Fatalf("expected a validator per prompt, got %d", len(driver.validators))
	}
	for i, validate := range driver.validators {
		if validate == nil {
			t.Fatalf("prompt %d has no validator", i)
		}
		if err := validate(" \t"); !errors.Is(err, ErrRequired) {
			t.Fatalf("prompt %d: blank answer accepted: %v", i, err)
		}
		if err := validate("x"); err != nil {
			t.Fatalf("prompt %d: answer rejected: %v", i, err)
		}
	}
}

func TestValidatorOpts_AdaptsToSurvey(t *testing.T) {
	if opts := validatorOpts(nil); opts != nil {
		t.Fatalf("expected no options without a validator")
	}

	opts := validatorOpts(requireValue)
	if len(opts) != 1 {
		t.Fatalf("expected one option, got %d", len(opts))
	}
	var ask survey.AskOptions
	if err := opts[0](&ask); err != nil {
		t.Fatalf("apply option: %v", err)
	}
	if len(ask.Validators) != 1 {
		t.Fatalf("expected one survey validator, got %d", len(ask.Validators))
	}
	if err := ask.Validators[0](""); !errors.Is(err, ErrRequired) {
		t.Fatalf("blank answer accepted: %v", err)
	}
	if err := ask.Validators[0]("Ada"); err != nil {
		t.Fatalf("answer rejected: %v", err)
	}
}

func TestCollect_RepromptsEmptyAnswers(t *testing.T) {
	driver := &stubDriver{inputs: []string{"  ", "", "ok"}}
	r, _ := New(WithPromptDriver(driver), WithTheme(Theme{ErrorPrefix: "! "}))

	form := render.Form{Fields: fields.FieldSet{{Key: "entry.1", Label: "Question 1", Type: "text"}}}
	got, err := r.Collect(context.Background(), form, render.RenderOptions{})
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if v, _ := got.Get("entry.1"); v != "ok" {
		t.Fatalf("unexpected answer %q", v)
	}
	if len(driver.infoMessages) != 2 || driver.infoMessages[0] != "! Question 1: "+ErrRequired.Error() {
		t.Fatalf("unexpected info messages %q", driver.infoMessages)
	}
}

func TestCollect_SeedsDefaultsAndKeepsExtraAnswers(t *testing.T) {
	driver := &stubDriver{inputs: []string{"new"}}
	r, _ := New(WithPromptDriver(driver))

	seed := answers.New(
		answers.Entry{Key: "extra", Value: "kept"},
		answers.Entry{Key: "entry.1", Value: "old"},
	)
	form := render.Form{Fields: fields.FieldSet{{Key: "entry.1", Label: "Q", Type: "text"}}}

	got, err := r.Collect(context.Background(), form, render.RenderOptions{Values: seed})
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if diff := cmp.Diff([]string{"old"}, driver.defaults); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
	want := []answers.Entry{{Key: "extra", Value: "kept"}, {Key: "entry.1", Value: "new"}}
	if diff := cmp.Diff(want, got.Entries()); diff != "" {
		t.Fatalf("answers mismatch (-want +got):\n%s", diff)
	}
}

func TestCollect_PropagatesDriverErrors(t *testing.T) {
	r, _ := New(WithPromptDriver(&stubDriver{}))
	if _, err := r.Collect(context.Background(), testForm(), render.RenderOptions{}); err == nil {
		t.Fatalf("expected driver error")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.Collect(ctx, testForm(), render.RenderOptions{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context error, got %v", err)
	}
}

func TestRender_OutputFormats(t *testing.T) {
	form := render.Form{Fields: fields.FieldSet{
		{Key: "entry.1", Label: "Name", Type: "text"},
		{Key: "entry.2", Label: "City", Type: "text"},
	}}

	cases := []struct {
		format      OutputFormat
		contentType string
		want        string
	}{
		{OutputFormatFormURLEncoded, "application/x-www-form-urlencoded", "entry.1=Ada+L&entry.2=London"},
		{OutputFormatJSON, "application/json", `[{"key":"entry.1","value":"Ada L"},{"key":"entry.2","value":"London"}]`},
		{OutputFormatPrettyText, "text/plain; charset=utf-8", "Name: Ada L\nCity: London\n"},
	}
	for _, tc := range cases {
		t.Run(string(tc.format), func(t *testing.T) {
			driver := &stubDriver{inputs: []string{"Ada L", "London"}}
			r, _ := New(WithPromptDriver(driver), WithOutputFormat(tc.format))

			if r.ContentType() != tc.contentType {
				t.Fatalf("content type: want %s, got %s", tc.contentType, r.ContentType())
			}
			out, err := r.Render(context.Background(), form, render.RenderOptions{})
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			if string(out) != tc.want {
				t.Fatalf("output mismatch\nwant %q\n got %q", tc.want, out)
			}
		})
	}
}

func TestConfirm(t *testing.T) {
	r, _ := New(WithPromptDriver(&stubDriver{confirm: []bool{true}}))
	ok, err := r.Confirm(context.Background(), "Submit?", false)
	if err != nil || !ok {
		t.Fatalf("confirm: %v %v", ok, err)
	}
	if r.Name() != "tui" {
		t.Fatalf("unexpected name %q", r.Name())
	}
}
