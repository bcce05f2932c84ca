package config

type WorkerKeyStruct struct {
	ContactNotifyQueue string
}

var WorkerKey = &WorkerKeyStruct{
	ContactNotifyQueue: "contact_notify_queue",
}
