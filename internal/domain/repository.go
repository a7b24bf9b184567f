package domain

import "context"

// ModuleRepository stores course modules. Module authoring has no HTTP
// surface; modules are created by the seed tool.
type ModuleRepository interface {
	// FindModule returns (nil, nil) when the module does not exist.
	FindModule(ctx context.Context, id int64) (*Module, error)
	// FindModuleByTitle returns the oldest module with the title, or (nil, nil).
	FindModuleByTitle(ctx context.Context, title string) (*Module, error)
	CreateModule(ctx context.Context, module *Module) (int64, error)
}

// QuizRepository persists the quiz tree. All methods join the transaction
// carried by ctx, if any.
type QuizRepository interface {
	// FindQuizByModule returns the quiz header without questions, or (nil, nil).
	FindQuizByModule(ctx context.Context, moduleID int64) (*Quiz, error)
	// FindQuizTreeByModule returns the full aggregate, or (nil, nil).
	FindQuizTreeByModule(ctx context.Context, moduleID int64) (*Quiz, error)

	CreateQuiz(ctx context.Context, quiz *Quiz) (int64, error)
	CreateQuestion(ctx context.Context, question *Question) (int64, error)
	CreateChoice(ctx context.Context, choice *Choice) (int64, error)
	UpdateQuiz(ctx context.Context, quiz *Quiz) error

	// DeleteQuestionsOfQuiz deletes every choice and then every question of the quiz.
	DeleteQuestionsOfQuiz(ctx context.Context, quizID int64) error
	// DeleteQuiz deletes the whole tree: choices, questions, then the quiz row.
	DeleteQuiz(ctx context.Context, quizID int64) error
}

// TransactionManager runs fn inside a single commit/rollback boundary.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
