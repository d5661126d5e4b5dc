package pb

// ActorMetadataKey is the request metadata key naming the caller
// ("username@hostname") for audit logs.
const ActorMetadataKey = "x-statebox-actor"
