// Package notify fans order events out to live kitchen and waiter displays.
//
// A Registry keeps the open subscribers per audience. A Broadcaster takes a
// point-in-time snapshot of one audience and offers the event to every
// subscriber without blocking: a subscriber whose buffer is full or that was
// already closed is dropped from the registry and the broadcast carries on.
// A broadcast never fails for the caller.
//
// Subscribers are consumed by the transport layer, which drains Events until
// Done is closed:
//
//	sub, _ := registry.Subscribe(notify.Kitchen)
//	defer registry.Unsubscribe(sub)
//	for {
//	    select {
//	    case <-sub.Done():
//	        return
//	    case ev := <-sub.Events():
//	        // write ev
//	    }
//	}
package notify
