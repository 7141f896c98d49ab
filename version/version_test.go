package version

import "testing"

func TestOrdering(t *testing.T) {
	if !V1_8.Before(V1_14) {
		t.Fatalf("V1_8 should be before V1_14")
	}
	if !V1_18_2.AtLeast(V1_14) {
		t.Fatalf("V1_18_2 should be at least V1_14")
	}
	if V1_14.AtLeast(V1_18_2) {
		t.Fatalf("V1_14 should not be at least V1_18_2")
	}
}

func TestMajor(t *testing.T) {
	maj, ok := V1_14_4.Major()
	if !ok || maj != 14 {
		t.Fatalf("Major() = %d, %v; want 14, true", maj, ok)
	}
}

func TestString(t *testing.T) {
	if got := V1_12.String(); got != "1.12" {
		t.Fatalf("String() = %q, want %q", got, "1.12")
	}
}

func TestLatestIsNewestVersion(t *testing.T) {
	if Latest != V1_18_2 {
		t.Fatalf("Latest = %v, want V1_18_2", Latest)
	}
	for v := range names {
		if !v.Before(Latest) && v != Latest {
			t.Fatalf("%v is not before or equal to Latest", v)
		}
	}
}
