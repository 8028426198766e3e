package reminder

import "errors"

var ErrReminderDoesNotExist = errors.New("reminder does not exist")

var ErrReminderAlreadyExists = errors.New("reminder already exists")
