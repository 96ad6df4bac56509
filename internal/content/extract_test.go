package content

import "testing"

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain object", `{"word": "GEN"}`, `{"word": "GEN"}`},
		{"plain array", `[{"id": "1"}]`, `[{"id": "1"}]`},
		{"fenced", "```json\n[1, [2, 3]]\n```", `[1, [2, 3]]`},
		{"chatter around", `Aquí está: {"a": {"b": 1}} ¡Listo!`, `{"a": {"b": 1}}`},
		{"brackets in strings", `{"hint": "usa } y ] sin miedo"}`, `{"hint": "usa } y ] sin miedo"}`},
		{"escaped quote", `{"q": "dijo \"hola\" }"}`, `{"q": "dijo \"hola\" }"}`},
		{"quotes before value", `"nota": [1]`, `[1]`},
		{"stray closer first", `] {"ok": true}`, `{"ok": true}`},
		{"no json", `no hay nada aquí`, ``},
		{"unterminated", `{"a": 1`, ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractJSON(tt.in); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
