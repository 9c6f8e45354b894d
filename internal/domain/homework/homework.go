// internal/domain/homework/homework.go
package homework

import "fmt"

// Status is a review state reported by the Practicum API.
type Status string

const (
	StatusApproved  Status = "approved"
	StatusReviewing Status = "reviewing"
	StatusRejected  Status = "rejected"
)

// Verdicts maps every known review status to the sentence sent to the chat.
var Verdicts = map[Status]string{
	StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	StatusReviewing: "Работа взята на проверку ревьюером.",
	StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
}

// Homework is the review metadata of one submission.
type Homework struct {
	Name   string // homework_name
	Status Status // status
}

// FromRecord builds a Homework from one element of the homeworks list.
func FromRecord(record any) (Homework, error) {
	fields, ok := record.(map[string]any)
	if !ok {
		return Homework{}, ErrHomeworkNotMapping
	}

	name, ok := fields["homework_name"].(string)
	if !ok {
		return Homework{}, ErrMissingHomeworkName
	}
	status, ok := fields["status"].(string)
	if !ok {
		return Homework{}, ErrMissingStatus
	}

	return Homework{Name: name, Status: Status(status)}, nil
}

// Verdict returns the human readable verdict for the homework status.
func (h Homework) Verdict() (string, error) {
	verdict, ok := Verdicts[h.Status]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, h.Status)
	}
	return verdict, nil
}

// Message formats the notification text for the homework.
func (h Homework) Message() (string, error) {
	verdict, err := h.Verdict()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(`Изменился статус проверки работы "%s". %s`, h.Name, verdict), nil
}

// ParseStatus formats the notification for the first homework in the list.
// Only the first record is considered. An empty list yields an empty message
// and no error, meaning there is nothing to report.
func ParseStatus(homeworks []any) (string, error) {
	if len(homeworks) == 0 {
		return "", nil
	}

	hw, err := FromRecord(homeworks[0])
	if err != nil {
		return "", err
	}
	return hw.Message()
}
