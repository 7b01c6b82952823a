package services

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tradehub/internal/models/db_models"
	"tradehub/internal/models/request_models"
	"tradehub/internal/models/response_models"
	"tradehub/internal/questionnaire"
	"tradehub/pkg/sessions"
	"tradehub/pkg/utils"
)

// Wizard steps. Guests walk all five; authenticated posters stop at four,
// with contact acting as review-and-confirm.
const (
	StepJobDetails = 1
	StepLocation   = 2
	StepBudget     = 3
	StepContact    = 4
	StepAccount    = 5
)

const minDescriptionLength = 30

// wizardSession is one in-flight posting flow. The mutex makes every
// mutate→recompute→reclamp sequence atomic with respect to other mutations
// on the same session.
type wizardSession struct {
	mu sync.Mutex

	ID          string
	PosterID    *uuid.UUID
	CurrentStep int
	TotalSteps  int

	CategorySlug string
	CategoryName string
	CategoryID   *uuid.UUID

	// fetchSeq increments on every category selection; a resolved question
	// set is applied only if the sequence is unchanged, so a superseded
	// fetch is discarded instead of clobbering a newer answer store.
	fetchSeq uint64

	Set     []questionnaire.Question
	Answers *questionnaire.AnswerStore
	Nav     questionnaire.Navigator

	FieldErrors map[string]string

	Form JobForm

	AwaitingAccountChoice bool
	AwaitingSignIn        bool
}

type WizardServiceInterface interface {
	Start(ctx context.Context, request request_models.StartWizardRequest, posterID *uuid.UUID) (*response_models.WizardStateResponse, error)
	GetState(ctx context.Context, sessionID string) (*response_models.WizardStateResponse, error)
	SelectCategory(ctx context.Context, sessionID string, request request_models.SelectCategoryRequest) (*response_models.WizardStateResponse, error)
	ApplyAnswer(ctx context.Context, sessionID string, request request_models.ApplyAnswerRequest) (*response_models.WizardStateResponse, error)
	NextQuestion(ctx context.Context, sessionID string) (*response_models.WizardStateResponse, error)
	PreviousQuestion(ctx context.Context, sessionID string) (*response_models.WizardStateResponse, error)
	UpdateForm(ctx context.Context, sessionID string, request request_models.UpdateFormRequest) (*response_models.WizardStateResponse, error)
	NextStep(ctx context.Context, sessionID string) (*response_models.WizardStateResponse, error)
	PreviousStep(ctx context.Context, sessionID string) (*response_models.WizardStateResponse, error)
	AccountChoice(ctx context.Context, sessionID string, request request_models.AccountChoiceRequest) (*response_models.WizardStateResponse, error)
	CreateAccountAndSubmit(ctx context.Context, sessionID string, request request_models.CreateAccountStepRequest) (*response_models.WizardStateResponse, error)
	CompleteSignIn(ctx context.Context, sessionID string, posterID uuid.UUID) (*response_models.WizardStateResponse, error)
}

type WizardService struct {
	store           *sessions.Store[*wizardSession]
	categoryService CategoryServiceInterface
	questionService QuestionServiceInterface
	accountService  AccountServiceInterface
	jobService      JobServiceInterface
	logger          *zap.Logger
}

func NewWizardService(
	store *sessions.Store[*wizardSession],
	categoryService CategoryServiceInterface,
	questionService QuestionServiceInterface,
	accountService AccountServiceInterface,
	jobService JobServiceInterface,
	logger *zap.Logger,
) WizardServiceInterface {
	return &WizardService{
		store:           store,
		categoryService: categoryService,
		questionService: questionService,
		accountService:  accountService,
		jobService:      jobService,
		logger:          logger,
	}
}

// NewWizardSessionStore builds the TTL'd holder for in-flight sessions.
func NewWizardSessionStore() *sessions.Store[*wizardSession] {
	return sessions.NewStore[*wizardSession](sessions.DefaultWizardTTL)
}

func (w *WizardService) Start(ctx context.Context, request request_models.StartWizardRequest, posterID *uuid.UUID) (*response_models.WizardStateResponse, error) {
	s := &wizardSession{
		ID:          uuid.New().String(),
		CurrentStep: StepJobDetails,
		TotalSteps:  StepAccount,
		Answers:     questionnaire.NewAnswerStore(nil),
		FieldErrors: map[string]string{},
	}

	if posterID != nil {
		id := *posterID
		s.PosterID = &id
		s.TotalSteps = StepContact
		w.prefillContact(ctx, s)
	}

	w.store.Put(s.ID, s)

	s.mu.Lock()
	defer s.mu.Unlock()

	if request.Category != "" {
		if err := w.applyCategory(ctx, s, request.Category); err != nil {
			w.store.Delete(s.ID)
			return nil, err
		}
	}

	w.logger.Info("wizard started",
		zap.String("session_id", s.ID),
		zap.Bool("authenticated", s.PosterID != nil))

	return snapshot(s), nil
}

func (w *WizardService) GetState(ctx context.Context, sessionID string) (*response_models.WizardStateResponse, error) {
	s, err := w.session(sessionID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s), nil
}

func (w *WizardService) SelectCategory(ctx context.Context, sessionID string, request request_models.SelectCategoryRequest) (*response_models.WizardStateResponse, error) {
	s, err := w.session(sessionID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := w.applyCategory(ctx, s, request.Category); err != nil {
		return nil, err
	}
	return snapshot(s), nil
}

// applyCategory resolves the category's question set and reseeds the engine
// state. s.mu must be held; it is released around the fetch so a slow
// resolve never blocks the session, and the result is discarded if another
// selection happened in the meantime. A fetch failure degrades to an empty
// set, which step 1 then reports as the blocking configuration state.
func (w *WizardService) applyCategory(ctx context.Context, s *wizardSession, slug string) error {
	category, err := w.categoryService.GetCategoryBySlug(ctx, slug)
	if err != nil {
		return err
	}

	s.fetchSeq++
	seq := s.fetchSeq

	s.mu.Unlock()
	set, fetchErr := w.questionService.ResolveForCategory(ctx, category.ID)
	s.mu.Lock()

	if s.fetchSeq != seq {
		w.logger.Debug("discarding superseded question fetch",
			zap.String("session_id", s.ID),
			zap.String("category", slug))
		return nil
	}
	if fetchErr != nil {
		w.logger.Warn("question set fetch failed, degrading to empty set",
			zap.String("category", slug),
			zap.Error(fetchErr))
		set = nil
	}

	categoryID := category.ID
	s.CategorySlug = category.Slug
	s.CategoryName = category.Name
	s.CategoryID = &categoryID
	s.Set = set
	s.Answers.Reset(set)
	s.Nav.Reset()
	s.FieldErrors = map[string]string{}
	return nil
}

func (w *WizardService) ApplyAnswer(ctx context.Context, sessionID string, request request_models.ApplyAnswerRequest) (*response_models.WizardStateResponse, error) {
	s, err := w.session(sessionID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	question, ok := findQuestion(s.Set, request.QuestionID)
	if !ok {
		return nil, utils.ErrInvalidInput
	}

	answer, err := answerFromRequest(question.Type, request)
	if err != nil {
		return nil, err
	}

	s.Answers.Set(question.ID, answer)
	delete(s.FieldErrors, question.ID)

	// Mutation applied: recompute visibility, reclamp, and drop errors
	// keyed to questions that just went hidden.
	visible := questionnaire.Visible(s.Set, s.Answers)
	s.Nav.Reclamp(visible)
	dropHiddenErrors(s, visible)

	return snapshot(s), nil
}

func (w *WizardService) NextQuestion(ctx context.Context, sessionID string) (*response_models.WizardStateResponse, error) {
	s, err := w.session(sessionID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	visible := questionnaire.Visible(s.Set, s.Answers)
	current, ok := s.Nav.Current(visible)
	if ok {
		answer, _ := s.Answers.Get(current.ID)
		if questionnaire.RequiredAndUnanswered(current, answer) {
			s.FieldErrors[current.ID] = "this question is required"
			return snapshot(s), nil
		}
		delete(s.FieldErrors, current.ID)
		if s.Nav.Advance(visible) {
			return snapshot(s), nil
		}
	}

	// Last visible question (or none at all): hand over to the step gate.
	return w.advanceStep(ctx, s)
}

func (w *WizardService) PreviousQuestion(ctx context.Context, sessionID string) (*response_models.WizardStateResponse, error) {
	s, err := w.session(sessionID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Nav.Retreat()
	return snapshot(s), nil
}

func (w *WizardService) UpdateForm(ctx context.Context, sessionID string, request request_models.UpdateFormRequest) (*response_models.WizardStateResponse, error) {
	s, err := w.session(sessionID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	patchForm(&s.Form, request, s.FieldErrors)
	return snapshot(s), nil
}

func (w *WizardService) NextStep(ctx context.Context, sessionID string) (*response_models.WizardStateResponse, error) {
	s, err := w.session(sessionID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	return w.advanceStep(ctx, s)
}

// advanceStep runs the current step's gate and moves forward. From the
// contact step it either submits (authenticated) or opens the account
// choice (guest). s.mu must be held.
func (w *WizardService) advanceStep(ctx context.Context, s *wizardSession) (*response_models.WizardStateResponse, error) {
	if s.AwaitingSignIn {
		return nil, utils.ErrWizardSuspended
	}

	if err := w.gateStep(s); err != nil {
		return nil, err
	}

	switch {
	case s.CurrentStep < StepContact:
		s.CurrentStep++
	case s.CurrentStep == StepContact:
		if s.PosterID != nil {
			return w.submit(ctx, s)
		}
		s.AwaitingAccountChoice = true
	default:
		// Step 5 completes through account creation, never a bare "next".
		return nil, utils.ErrNotAuthenticated
	}

	return snapshot(s), nil
}

// gateStep checks the current step's required fields, populating FieldErrors
// for anything missing. Step 1 delegates to the per-question validator when
// a question set is active, and to the minimum-description rule otherwise.
func (w *WizardService) gateStep(s *wizardSession) error {
	switch s.CurrentStep {
	case StepJobDetails:
		if s.CategorySlug != "" && len(s.Set) == 0 {
			return utils.ErrNoQuestionsConfigured
		}
		incomplete := false
		if strings.TrimSpace(s.Form.Title) == "" {
			s.FieldErrors["title"] = "title is required"
			incomplete = true
		}
		if len(s.Set) > 0 {
			for _, q := range questionnaire.Visible(s.Set, s.Answers) {
				answer, _ := s.Answers.Get(q.ID)
				if questionnaire.RequiredAndUnanswered(q, answer) {
					s.FieldErrors[q.ID] = "this question is required"
					incomplete = true
				}
			}
		} else if len(strings.TrimSpace(s.Form.Description)) < minDescriptionLength {
			s.FieldErrors["description"] = "describe the job in at least 30 characters"
			incomplete = true
		}
		if incomplete {
			return utils.ErrStepIncomplete
		}

	case StepLocation:
		incomplete := false
		if strings.TrimSpace(s.Form.State) == "" {
			s.FieldErrors["state"] = "state is required"
			incomplete = true
		}
		if strings.TrimSpace(s.Form.LGA) == "" {
			s.FieldErrors["lga"] = "LGA is required"
			incomplete = true
		}
		if incomplete {
			return utils.ErrStepIncomplete
		}

	case StepBudget:
		incomplete := false
		if s.Form.BudgetType == "" {
			s.FieldErrors["budget_type"] = "budget type is required"
			incomplete = true
		} else if s.Form.BudgetType != db_models.BudgetNegotiable && s.Form.BudgetAmount <= 0 {
			s.FieldErrors["budget_amount"] = "budget amount is required"
			incomplete = true
		}
		if incomplete {
			return utils.ErrStepIncomplete
		}

	case StepContact:
		incomplete := false
		if strings.TrimSpace(s.Form.ContactName) == "" {
			s.FieldErrors["contact_name"] = "contact name is required"
			incomplete = true
		}
		if strings.TrimSpace(s.Form.ContactEmail) == "" {
			s.FieldErrors["contact_email"] = "contact email is required"
			incomplete = true
		}
		if incomplete {
			return utils.ErrStepIncomplete
		}
	}
	return nil
}

func (w *WizardService) PreviousStep(ctx context.Context, sessionID string) (*response_models.WizardStateResponse, error) {
	s, err := w.session(sessionID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.AwaitingAccountChoice || s.AwaitingSignIn {
		s.AwaitingAccountChoice = false
		s.AwaitingSignIn = false
	} else if s.CurrentStep > StepJobDetails {
		s.CurrentStep--
	}
	return snapshot(s), nil
}

func (w *WizardService) AccountChoice(ctx context.Context, sessionID string, request request_models.AccountChoiceRequest) (*response_models.WizardStateResponse, error) {
	s, err := w.session(sessionID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.AwaitingAccountChoice {
		return nil, utils.ErrAccountChoice
	}
	s.AwaitingAccountChoice = false

	switch request.Choice {
	case request_models.AccountChoiceCreate:
		s.CurrentStep = StepAccount
	case request_models.AccountChoiceSignIn:
		s.AwaitingSignIn = true
	default:
		return nil, utils.ErrInvalidInput
	}
	return snapshot(s), nil
}

// CreateAccountAndSubmit is the guest step 5: make the account, then submit
// the job under it.
func (w *WizardService) CreateAccountAndSubmit(ctx context.Context, sessionID string, request request_models.CreateAccountStepRequest) (*response_models.WizardStateResponse, error) {
	s, err := w.session(sessionID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.CurrentStep != StepAccount || s.PosterID != nil {
		return nil, utils.ErrInvalidInput
	}

	account, err := w.accountService.CreateAccount(ctx, request_models.SignUpRequest{
		DisplayName: request.DisplayName,
		Email:       request.Email,
		Phone:       request.Phone,
		Password:    request.Password,
		Role:        db_models.RoleHomeowner,
	})
	if err != nil {
		return nil, err
	}

	accountID := account.ID
	s.PosterID = &accountID
	if s.Form.ContactName == "" {
		s.Form.ContactName = account.Name
	}
	if s.Form.ContactEmail == "" {
		s.Form.ContactEmail = account.Email
	}
	if s.Form.ContactPhone == "" {
		s.Form.ContactPhone = account.Phone
	}

	return w.submit(ctx, s)
}

// CompleteSignIn resumes a wizard suspended on the sign-in choice. The
// login itself happened through the account endpoints; this call carries
// the success signal, after which submission runs immediately, skipping
// step 5.
func (w *WizardService) CompleteSignIn(ctx context.Context, sessionID string, posterID uuid.UUID) (*response_models.WizardStateResponse, error) {
	s, err := w.session(sessionID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.AwaitingSignIn {
		return nil, utils.ErrInvalidInput
	}
	s.AwaitingSignIn = false
	s.PosterID = &posterID
	s.TotalSteps = StepContact
	w.prefillContact(ctx, s)

	return w.submit(ctx, s)
}

// submit hands the session to the assembler. On success the session is
// spent and removed from the store. s.mu must be held.
func (w *WizardService) submit(ctx context.Context, s *wizardSession) (*response_models.WizardStateResponse, error) {
	job, err := w.jobService.Submit(ctx, SubmitJobInput{
		PosterID:     s.PosterID,
		CategoryID:   s.CategoryID,
		CategoryName: s.CategoryName,
		Form:         s.Form,
		Set:          s.Set,
		Answers:      s.Answers,
	})
	if err != nil {
		return nil, err
	}

	w.store.Delete(s.ID)

	out := snapshot(s)
	out.Job = job
	return out, nil
}

// prefillContact copies the poster's account details into empty contact
// fields. A lookup failure only means the poster types them in by hand.
func (w *WizardService) prefillContact(ctx context.Context, s *wizardSession) {
	if s.PosterID == nil {
		return
	}
	account, err := w.accountService.GetAccountById(ctx, s.PosterID.String())
	if err != nil {
		w.logger.Warn("contact prefill failed", zap.Error(err))
		return
	}
	if s.Form.ContactName == "" {
		s.Form.ContactName = account.Name
	}
	if s.Form.ContactEmail == "" {
		s.Form.ContactEmail = account.Email
	}
	if s.Form.ContactPhone == "" {
		s.Form.ContactPhone = account.Phone
	}
}

func (w *WizardService) session(sessionID string) (*wizardSession, error) {
	s, ok := w.store.Get(sessionID)
	if !ok {
		return nil, utils.ErrSessionNotFound
	}
	return s, nil
}

func findQuestion(set []questionnaire.Question, id string) (questionnaire.Question, bool) {
	for _, q := range set {
		if q.ID == id {
			return q, true
		}
	}
	return questionnaire.Question{}, false
}

func answerFromRequest(t questionnaire.QuestionType, request request_models.ApplyAnswerRequest) (questionnaire.Answer, error) {
	switch t {
	case questionnaire.TypeYesNo:
		if request.BoolValue == nil {
			return questionnaire.Answer{}, utils.ErrInvalidInput
		}
		return questionnaire.YesNoAnswer(*request.BoolValue), nil
	case questionnaire.TypeMultipleChoice:
		return questionnaire.SelectionAnswer(request.Values), nil
	default:
		return questionnaire.TextAnswer(t, request.Value), nil
	}
}

// dropHiddenErrors removes field errors keyed to questions no longer in the
// visible sequence. Form-field errors are untouched.
func dropHiddenErrors(s *wizardSession, visible []questionnaire.Question) {
	visibleIDs := make(map[string]bool, len(visible))
	for _, q := range visible {
		visibleIDs[q.ID] = true
	}
	for _, q := range s.Set {
		if !visibleIDs[q.ID] {
			delete(s.FieldErrors, q.ID)
		}
	}
}

func patchForm(form *JobForm, request request_models.UpdateFormRequest, fieldErrors map[string]string) {
	apply := func(dst *string, src *string, field string) {
		if src != nil {
			*dst = *src
			delete(fieldErrors, field)
		}
	}
	apply(&form.Title, request.Title, "title")
	apply(&form.Description, request.Description, "description")
	apply(&form.State, request.State, "state")
	apply(&form.LGA, request.LGA, "lga")
	apply(&form.Address, request.Address, "address")
	apply(&form.Timeline, request.Timeline, "timeline")
	apply(&form.BudgetType, request.BudgetType, "budget_type")
	apply(&form.ContactName, request.ContactName, "contact_name")
	apply(&form.ContactEmail, request.ContactEmail, "contact_email")
	apply(&form.ContactPhone, request.ContactPhone, "contact_phone")

	if request.Latitude != nil {
		form.Latitude = request.Latitude
	}
	if request.Longitude != nil {
		form.Longitude = request.Longitude
	}
	if request.BudgetAmount != nil {
		form.BudgetAmount = *request.BudgetAmount
		delete(fieldErrors, "budget_amount")
	}
}

// snapshot renders the session for the client. s.mu must be held.
func snapshot(s *wizardSession) *response_models.WizardStateResponse {
	visible := questionnaire.Visible(s.Set, s.Answers)

	views := make([]response_models.QuestionView, 0, len(visible))
	for _, q := range visible {
		views = append(views, toQuestionView(q))
	}

	var current *response_models.QuestionView
	if q, ok := s.Nav.Current(visible); ok {
		view := toQuestionView(q)
		current = &view
	}

	recap := make([]response_models.AnswerRecap, 0, s.Nav.Index())
	for i, q := range visible {
		if i >= s.Nav.Index() {
			break
		}
		answer, ok := s.Answers.Get(q.ID)
		if !ok || answer.IsEmpty() {
			continue
		}
		recap = append(recap, response_models.AnswerRecap{
			QuestionID:   q.ID,
			QuestionText: q.Text,
			Display:      questionnaire.FormatForDisplay(q, answer),
		})
	}

	fieldErrors := make(map[string]string, len(s.FieldErrors))
	for k, v := range s.FieldErrors {
		fieldErrors[k] = v
	}

	return &response_models.WizardStateResponse{
		SessionID:             s.ID,
		CurrentStep:           s.CurrentStep,
		TotalSteps:            s.TotalSteps,
		Category:              s.CategorySlug,
		VisibleQuestions:      views,
		QuestionIndex:         s.Nav.Index(),
		CurrentQuestion:       current,
		Recap:                 recap,
		FieldErrors:           fieldErrors,
		AwaitingAccountChoice: s.AwaitingAccountChoice,
		AwaitingSignIn:        s.AwaitingSignIn,
	}
}

func toQuestionView(q questionnaire.Question) response_models.QuestionView {
	options := make([]response_models.OptionView, 0, len(q.Options))
	for _, opt := range q.Options {
		options = append(options, response_models.OptionView{Value: opt.Value, Text: opt.Text})
	}
	return response_models.QuestionView{
		ID:          q.ID,
		Text:        q.Text,
		Type:        string(q.Type),
		IsRequired:  q.Required,
		Options:     options,
		Placeholder: q.Placeholder,
		HelpText:    q.HelpText,
		MinValue:    q.MinValue,
		MaxValue:    q.MaxValue,
	}
}
