package utils

import "testing"

func TestPasswordHashing(t *testing.T) {
	hashed, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hashed == "correct horse battery staple" {
		t.Fatal("hash must not equal the plaintext")
	}

	if !ComparePassword(hashed, "correct horse battery staple") {
		t.Error("matching password should compare true")
	}
	if ComparePassword(hashed, "wrong password") {
		t.Error("wrong password should compare false")
	}

	// Same input, different salt.
	again, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatal(err)
	}
	if again == hashed {
		t.Error("two hashes of the same password should differ")
	}
}
