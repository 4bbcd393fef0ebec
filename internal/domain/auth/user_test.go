package auth

import (
	"encoding/json"
	"strings"
	"testing"
)

func ptr[T any](v T) *T { return &v }

func TestUserPatch_Apply(t *testing.T) {
	u := &User{ID: "u1", Name: "Ada", Email: "ada@example.com", Bio: "colorist"}
	patch := UserPatch{Name: ptr("Ada L."), IsPremium: ptr(true), Specialties: []string{"balayage"}}

	got := patch.Apply(u)

	if got.Name != "Ada L." || !got.IsPremium || got.Bio != "colorist" {
		t.Fatalf("unexpected merge: %+v", got)
	}
	if len(got.Specialties) != 1 || got.Specialties[0] != "balayage" {
		t.Fatalf("specialties = %v", got.Specialties)
	}
	if u.Name != "Ada" || u.IsPremium {
		t.Fatal("Apply mutated its input")
	}
	if (UserPatch{}).Apply(nil) != nil {
		t.Fatal("expected nil for nil user")
	}
}

func TestUserPatch_IsEmpty(t *testing.T) {
	if !(UserPatch{}).IsEmpty() {
		t.Fatal("zero patch should be empty")
	}
	if (UserPatch{Bio: ptr("")}).IsEmpty() {
		t.Fatal("explicit empty string is still a change")
	}
}

func TestUser_DisplayName(t *testing.T) {
	cases := []struct {
		want string
		user *User
	}{
		{"Ada", &User{Name: "Ada", FirstName: "X"}},
		{"Ada Lovelace", &User{FirstName: "Ada", LastName: "Lovelace"}},
		{"Ada", &User{FirstName: "Ada"}},
		{"ada@example.com", &User{Email: "ada@example.com"}},
	}
	for _, c := range cases {
		if got := c.user.DisplayName(); got != c.want {
			t.Fatalf("DisplayName() = %q, want %q", got, c.want)
		}
	}
}

func TestSnapshot_JSONShape(t *testing.T) {
	b, err := json.Marshal(Snapshot{User: &User{ID: "u1", Name: "Ada"}, IsAuthenticated: true})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(b)
	for _, key := range []string{`"user":`, `"isAuthenticated":true`, `"trialDaysLeft":0`} {
		if !strings.Contains(s, key) {
			t.Fatalf("missing %s in %s", key, s)
		}
	}
	for _, key := range []string{"loading", "error"} {
		if strings.Contains(s, key) {
			t.Fatalf("transient field %s persisted: %s", key, s)
		}
	}
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  Ada@Example.COM "); got != "ada@example.com" {
		t.Fatalf("NormalizeEmail() = %q", got)
	}
}
