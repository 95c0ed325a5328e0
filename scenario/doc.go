// Package scenario loads YAML descriptions of channel/precoder/order cases
// and turns them into sic.Case values.
//
//	name: two-user
//	cases:
//	  - name: orthogonal
//	    channel:
//	      - [[1, 0]]
//	      - [[1, 0]]
//	    precoder:
//	      - [1, 0]
//	      - [0, 1]
//	  - name: tilted
//	    channel:
//	      - [["1+0i", 0]]
//	      - [[{re: 0.5, im: 0.5}, 0]]
//	    precoder:
//	      - [1, 0.7071]
//	      - [0, 0.7071]
//	    order: [1, 0]
//	  - name: drawn
//	    generate: {users: 4, tx: 4, seed: 7, order_by_gain: true}
package scenario
