package telemetry

import (
	"context"
	"testing"
)

func TestTracerWithoutSetup(t *testing.T) {
	_, span := Tracer("walk").Start(context.Background(), "walk")
	defer span.End()

	if span.SpanContext().IsValid() {
		t.Error("span from the default provider should not be sampled")
	}
}

func TestGetHostname(t *testing.T) {
	if getHostname() == "" {
		t.Error("getHostname() returned empty string")
	}
}
