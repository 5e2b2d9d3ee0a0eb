// Package settings is the admin settings screen without its rendering.
//
// A Screen owns one FormState and runs two independent workflows against
// injected collaborators:
//
//   - Profile editor: Mount/SetIdentity load the persisted profile record,
//     SubmitProfile merge-writes the first and last name.
//   - Credential rotator: SubmitPassword checks the confirmation, then
//     reauthenticates with the current password and sets the new one.
//
// Every outcome is reported through the Notifier; no workflow returns an
// error. Each workflow has its own busy flag and a submission made while
// the flag is set is dropped. Renderers read state with Form/State or
// register with Subscribe.
package settings
