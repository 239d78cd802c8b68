package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTopic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "  кардиология / ЭКГ ", want: "Кардиология"},
		{in: "НЕОНАТОЛОГИЯ, реанимация", want: "Неонатология"},
		{in: "Инфекции - дети", want: "Инфекции"},
		{in: "пульмонология — астма", want: "Пульмонология"},
		{in: "cardio/ecg, rhythm", want: "Cardio"},
		{in: "Anatomy", want: "Anatomy"},
		{in: "", want: ""},
		{in: "/only separator", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, NormalizeTopic(tt.in))
		})
	}
}
