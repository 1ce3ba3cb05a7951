package syllabus

import "testing"

func TestSubjectsFor(t *testing.T) {
	jee := SubjectsFor(ExamJEE)
	if len(jee) != 3 || jee[2] != SubjectMathematics {
		t.Fatalf("unexpected JEE subjects: %v", jee)
	}
	neet := SubjectsFor(ExamNEET)
	if len(neet) != 3 || neet[2] != SubjectBiology {
		t.Fatalf("unexpected NEET subjects: %v", neet)
	}
	for _, s := range neet {
		if s == SubjectMathematics {
			t.Fatal("NEET must not offer Mathematics")
		}
	}
}

func TestQuizConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     QuizConfig
		wantErr bool
	}{
		{
			name: "valid JEE physics",
			cfg:  QuizConfig{Exam: ExamJEE, Subject: SubjectPhysics, Topic: "Kinematics", Level: LevelBoards},
		},
		{
			name: "valid NEET biology foundational",
			cfg:  QuizConfig{Exam: ExamNEET, Subject: SubjectBiology, Topic: TopicFoundational, Level: LevelMains},
		},
		{
			name:    "biology not offered for JEE",
			cfg:     QuizConfig{Exam: ExamJEE, Subject: SubjectBiology, Topic: "Genetics", Level: LevelMains},
			wantErr: true,
		},
		{
			name:    "mathematics not offered for NEET",
			cfg:     QuizConfig{Exam: ExamNEET, Subject: SubjectMathematics, Topic: "Calculus", Level: LevelMains},
			wantErr: true,
		},
		{
			name:    "empty topic",
			cfg:     QuizConfig{Exam: ExamJEE, Subject: SubjectPhysics, Topic: "", Level: LevelBoards},
			wantErr: true,
		},
		{
			name:    "unknown exam",
			cfg:     QuizConfig{Exam: Exam("GATE"), Subject: SubjectPhysics, Topic: "Optics", Level: LevelBoards},
			wantErr: true,
		},
		{
			name:    "unknown level",
			cfg:     QuizConfig{Exam: ExamJEE, Subject: SubjectPhysics, Topic: "Optics", Level: Level("Olympiad")},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr && err == nil {
				t.Fatal("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestIsFoundational(t *testing.T) {
	cfg := QuizConfig{Topic: TopicFoundational}
	if !cfg.IsFoundational() {
		t.Fatal("expected foundational")
	}
	cfg.Topic = "Thermodynamics"
	if cfg.IsFoundational() {
		t.Fatal("expected not foundational")
	}
}
