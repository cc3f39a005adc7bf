package chat

import "testing"

func TestDirectoryListPreservesInsertionOrder(t *testing.T) {
	directory := SeedDirectory()

	all := directory.List("")
	if len(all) != 9 {
		t.Fatalf("expected 9 seeded conversations, got %d", len(all))
	}
	if all[0].Name != "Sarah Chen" || all[8].Name != "Study Group" {
		t.Fatalf("unexpected ordering: first=%q last=%q", all[0].Name, all[8].Name)
	}
}

func TestDirectoryListFiltersByKind(t *testing.T) {
	directory := SeedDirectory()

	private := directory.List(KindPrivate)
	if len(private) != 8 {
		t.Fatalf("expected 8 private conversations, got %d", len(private))
	}
	for _, conversation := range private {
		if conversation.IsGroup() {
			t.Fatalf("private filter returned group %q", conversation.Name)
		}
	}

	groups := directory.List(KindGroup)
	if len(groups) != 1 {
		t.Fatalf("expected 1 group conversation, got %d", len(groups))
	}
	if groups[0].GroupKey != StudyGroupKey {
		t.Fatalf("expected group key %q, got %q", StudyGroupKey, groups[0].GroupKey)
	}
}

func TestDirectoryListTreatsMissingKindAsPrivate(t *testing.T) {
	directory := NewDirectory([]Conversation{
		{ID: "1", Name: "No Kind"},
		{ID: "2", Name: "Group", Kind: KindGroup, GroupKey: "group"},
	})

	private := directory.List(KindPrivate)
	if len(private) != 1 || private[0].ID != "1" {
		t.Fatalf("expected legacy entry to count as private, got %+v", private)
	}
}

func TestDirectoryFindByIDCoercesIdentifiers(t *testing.T) {
	directory := SeedDirectory()

	conversation, ok := directory.FindByID(" 4 ")
	if !ok {
		t.Fatalf("expected whitespace-padded id to resolve")
	}
	if conversation.Name != "David Kim" {
		t.Fatalf("expected David Kim for id 4, got %q", conversation.Name)
	}

	if _, ok := directory.FindByID(""); ok {
		t.Fatalf("expected empty id to miss")
	}
	if _, ok := directory.FindByID("42"); ok {
		t.Fatalf("expected unknown id to miss")
	}
}

func TestMemberByID(t *testing.T) {
	group, ok := SeedDirectory().FindByID("9")
	if !ok {
		t.Fatalf("expected study group in seed directory")
	}

	member, ok := group.MemberByID("u2")
	if !ok || member.Name != "Ben Carter" {
		t.Fatalf("expected member u2 Ben Carter, got %+v ok=%v", member, ok)
	}

	if _, ok := group.MemberByID("u9"); ok {
		t.Fatalf("expected unknown member id to miss")
	}
}
