package profile

import (
	"testing"

	"github.com/go-park-mail-ru/2019_1_Remastered/testutils"
)

func TestGetProfile(t *testing.T) {
	testutils.RunAPITest(t, 0, &testutils.Case{
		ExpectedCode: 200,
		ExpectedContains: []string{
			`"name":"Alex Doe","username":"alex_doe"`,
			`{"id":4,"name":"Sue","avatar":"https://randomuser.me/api/portraits/women/76.jpg"}`,
			`"title":"Neon City Racing","creator":"alex_doe"`,
		},
		Method:   "GET",
		Pattern:  "/api/profile",
		Function: GetProfile,
	})
}

func TestInitial(t *testing.T) {
	if got := Current.Initial(); got != "A" {
		t.Fatalf("expected A, got %s", got)
	}
	if got := (&Friend{Name: "Ёж"}).Initial(); got != "Ё" {
		t.Fatalf("expected Ё, got %s", got)
	}
	if got := (&Friend{}).Initial(); got != "?" {
		t.Fatalf("expected ?, got %s", got)
	}
}
