// Package conference is the reference consumer of the scheduling engine:
// conference sessions ("activities") with a priority and a topic are
// assigned to rooms × time slots.
//
// It supplies the three pieces the engine deliberately does not own:
//
//   - Activity and the standard penalty formula (missed-session cost,
//     empty-slot cost, per-time-slot priority/topic conflict cost, and a
//     lateness cost that prefers high-priority sessions in early rooms);
//   - the JSON instance file format and its loader/writer;
//   - a statistical instance generator with uniform, Zipf, Pareto, and
//     geometric priority/topic distributions.
//
// The engine treats all of this as caller-supplied: nothing in packages
// schedule or search depends on conference.
package conference
