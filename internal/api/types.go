package api

// Wire types for the assessment backend. Field names follow the
// backend's snake_case JSON.

// Education is one entry in a candidate's education history.
type Education struct {
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	Institution string `json:"institution"`
	Year        int    `json:"year"`
	Grade       string `json:"grade"`
}

// Experience is one entry in a candidate's work history.
type Experience struct {
	Company        string   `json:"company"`
	Role           string   `json:"role"`
	DurationMonths int      `json:"duration_months"`
	Projects       []string `json:"projects"`
	Skills         []string `json:"skills"`
}

// CandidateInput is the registration payload for a candidate.
type CandidateInput struct {
	Name       string       `json:"name"`
	JobRole    string       `json:"job_role"`
	Education  []Education  `json:"education"`
	Experience []Experience `json:"experience"`
}

// ExpertInput is the registration payload for a subject-matter expert.
type ExpertInput struct {
	Name      string `json:"name"`
	Expertise string `json:"expertise"`
	Seniority int    `json:"seniority"`
}

// Profile is the backend's view of a registered user. Only the id is
// guaranteed; the rest echoes the registration payload.
type Profile struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	JobRole   string `json:"job_role,omitempty"`
	Expertise string `json:"expertise,omitempty"`
	Seniority int    `json:"seniority,omitempty"`
}

// InterviewInput books a new interview for a candidate.
type InterviewInput struct {
	CandidateID string `json:"candidate_id"`
	JobRole     string `json:"job_role"`
	Time        string `json:"time"` // RFC 3339
}

// Interview is one scheduled or completed interview. Score is nil until
// the interview has been finalized.
type Interview struct {
	ID          string `json:"id"`
	CandidateID string `json:"candidate_id"`
	JobRole     string `json:"job_role"`
	Time        string `json:"time"`
	Score       *int   `json:"score,omitempty"`
}

// Assignment links an expert to an interview session. Session is the
// interview ID.
type Assignment struct {
	ID          string `json:"id"`
	CandidateID string `json:"candidate_id"`
	ExpertID    string `json:"expert_id"`
	Session     string `json:"session"`
	Priority    int    `json:"priority"`
}

// QuestionInput submits a new question for a session.
type QuestionInput struct {
	QuestionText string `json:"question_text"`
	ExpertID     string `json:"expert_id"`
	SessionID    string `json:"session_id"`
}

// Question is one expert-authored interview question. RelevanceScore is
// assigned by the backend asynchronously and may be nil.
type Question struct {
	ID             string `json:"id"`
	QuestionText   string `json:"question_text"`
	ExpertID       string `json:"expert_id"`
	SessionID      string `json:"session_id"`
	RelevanceScore *int   `json:"relevance_score,omitempty"`
}

// AnswerInput submits a candidate's answer to one question.
type AnswerInput struct {
	CandidateID string `json:"candidate_id"`
	QuestionID  string `json:"question_id"`
	AnswerText  string `json:"answer_text"`
}

// Answer is the backend's record of a submitted answer. Score is nil
// until the backend has evaluated it.
type Answer struct {
	ID          string `json:"id"`
	CandidateID string `json:"candidate_id"`
	QuestionID  string `json:"question_id"`
	AnswerText  string `json:"answer_text"`
	Score       *int   `json:"score,omitempty"`
	Feedback    string `json:"feedback,omitempty"`
}
